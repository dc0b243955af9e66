// internal/services/user_service.go
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

type UserService struct {
	db      *gorm.DB
	catalog *catalog.Engine
}

type UpdateProfileRequest struct {
	Username string `json:"username,omitempty" validate:"omitempty,username"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

type ProfileResponse struct {
	User  models.UserSummary `json:"user"`
	Stats catalog.UserStats  `json:"stats"`
}

func NewUserService(db *gorm.DB, catalogEngine *catalog.Engine) *UserService {
	return &UserService{
		db:      db,
		catalog: catalogEngine,
	}
}

// GetProfile returns the user summary together with the aggregated
// statistics over their authored products and purchases.
func (s *UserService) GetProfile(userID uuid.UUID) (*ProfileResponse, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	stats, err := s.catalog.UserStats(userID)
	if err != nil {
		return nil, err
	}

	return &ProfileResponse{
		User:  user.Summary(),
		Stats: *stats,
	}, nil
}

func (s *UserService) UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.Email != "" && req.Email != user.Email {
		var existing models.User
		err := s.db.Where("email = ? AND id != ?", req.Email, userID).First(&existing).Error
		if err == nil {
			return nil, ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("database error: %w", err)
		}
		user.Email = req.Email
	}

	if req.Username != "" {
		user.Username = req.Username
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &user, nil
}

// GetUserProducts returns the user's authored products, newest first,
// with rating authors resolved to username references.
func (s *UserService) GetUserProducts(userID uuid.UUID) ([]catalog.ProductView, error) {
	var products []models.Product
	if err := s.db.Where("author_id = ?", userID).
		Preload("Author").Preload("Ratings.User").
		Order("created_at DESC, id DESC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch user products: %w", err)
	}

	views := make([]catalog.ProductView, 0, len(products))
	for i := range products {
		views = append(views, catalog.NewProductView(&products[i]))
	}

	return views, nil
}

// GetUserPurchases returns the products the user bought, in purchase
// order (most recent first), each with its author resolved to a
// username reference.
func (s *UserService) GetUserPurchases(userID uuid.UUID) ([]catalog.ProductView, error) {
	var purchases []models.Purchase
	if err := s.db.Where("user_id = ?", userID).
		Preload("Product.Author").
		Order("created_at DESC, id DESC").
		Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch purchases: %w", err)
	}

	views := make([]catalog.ProductView, 0, len(purchases))
	for i := range purchases {
		views = append(views, catalog.NewProductView(&purchases[i].Product))
	}

	return views, nil
}
