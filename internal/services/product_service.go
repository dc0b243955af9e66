// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codevault/codevault-backend/internal/catalog"
	"github.com/codevault/codevault-backend/internal/models"
	"github.com/codevault/codevault-backend/internal/utils"
)

type ProductService struct {
	db      *gorm.DB
	storage *StorageService
	catalog *catalog.Engine
}

type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=255"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"min=0"`
	Language    string   `json:"language" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Tags        []string `json:"tags,omitempty"`
	FileBase64  string   `json:"fileBase64,omitempty"`
	FileName    string   `json:"file_name,omitempty"`

	// Populated by the handler for multipart uploads instead of FileBase64.
	FileData        []byte `json:"-"`
	FileContentType string `json:"-"`
}

type RateProductRequest struct {
	Score  int    `json:"score" validate:"required,min=1,max=5"`
	Review string `json:"review,omitempty"`
}

func NewProductService(db *gorm.DB, storage *StorageService, catalogEngine *catalog.Engine) *ProductService {
	return &ProductService{
		db:      db,
		storage: storage,
		catalog: catalogEngine,
	}
}

// CreateProduct stores the file payload first and persists the product
// only after the blob upload succeeds. The two steps are not atomic: a
// store failure after a successful upload leaves an orphaned blob.
func (s *ProductService) CreateProduct(authorID uuid.UUID, req *CreateProductRequest) (*catalog.ProductView, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var author models.User
	if err := s.db.First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	upload, err := s.uploadFile(req)
	if err != nil {
		// A missing or undecodable payload is the client's fault; only
		// genuine storage failures surface as upload errors.
		if errors.Is(err, ErrInvalidFilePayload) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	product := &models.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Language:    req.Language,
		Category:    req.Category,
		Tags:        req.Tags,
		FileURL:     upload.URL,
		FileKey:     upload.Key,
		AuthorID:    authorID,
	}

	// The insert itself appends the product to the author's owned list;
	// ownership lives on the author_id foreign key.
	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if err := s.db.Preload("Author").First(product, product.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to load created product: %w", err)
	}

	view := catalog.NewProductView(product)
	return &view, nil
}

func (s *ProductService) uploadFile(req *CreateProductRequest) (*UploadResult, error) {
	switch {
	case req.FileBase64 != "":
		data, contentType, err := DecodeBase64Payload(req.FileBase64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFilePayload, err)
		}
		return s.storage.Upload(data, req.FileName, contentType)
	case len(req.FileData) > 0:
		return s.storage.Upload(req.FileData, req.FileName, req.FileContentType)
	default:
		return nil, ErrInvalidFilePayload
	}
}

func (s *ProductService) GetProduct(id uuid.UUID) (*catalog.ProductView, error) {
	var product models.Product
	if err := s.db.Preload("Author").Preload("Ratings.User").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	view := catalog.NewProductView(&product)
	return &view, nil
}

func (s *ProductService) ListProducts(filter catalog.Filter, page catalog.Page) (*catalog.ListResult, error) {
	return s.catalog.List(filter, page)
}

// Purchase records that the user bought the product and returns the
// download URL. The purchase append and the download-counter bump run
// in one transaction; re-purchasing the same product is allowed.
func (s *ProductService) Purchase(productID, userID uuid.UUID) (string, error) {
	var downloadURL string

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		purchase := &models.Purchase{
			UserID:    userID,
			ProductID: productID,
		}
		if err := tx.Create(purchase).Error; err != nil {
			return fmt.Errorf("failed to record purchase: %w", err)
		}

		if err := tx.Model(&product).UpdateColumn("downloads",
			gorm.Expr("downloads + ?", 1)).Error; err != nil {
			return fmt.Errorf("failed to update download count: %w", err)
		}

		downloadURL = product.FileURL
		return nil
	})

	if err != nil {
		return "", err
	}

	return downloadURL, nil
}

// Rate appends a rating to the product. Scores outside [1,5] are
// rejected; a user may rate the same product more than once.
func (s *ProductService) Rate(productID, userID uuid.UUID, req *RateProductRequest) (*catalog.ProductView, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, ErrInvalidRating
	}

	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	rating := &models.Rating{
		ProductID: productID,
		UserID:    userID,
		Score:     req.Score,
		Review:    req.Review,
	}
	if err := s.db.Create(rating).Error; err != nil {
		return nil, fmt.Errorf("failed to save rating: %w", err)
	}

	return s.GetProduct(productID)
}
