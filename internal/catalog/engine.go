// internal/catalog/engine.go
package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codevault/codevault-backend/internal/models"
)

// Engine runs filtered, paginated queries over the catalog store and
// computes per-user aggregates.
type Engine struct {
	db *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// AuthorRef is the only user data a product response exposes. Emails,
// avatars and login timestamps stay server-side.
type AuthorRef struct {
	Username string `json:"username"`
}

type RatingView struct {
	Score     int       `json:"score"`
	Review    string    `json:"review,omitempty"`
	User      AuthorRef `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductView struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Language    string       `json:"language"`
	Category    string       `json:"category"`
	Tags        []string     `json:"tags,omitempty"`
	FileURL     string       `json:"file_url"`
	Downloads   int64        `json:"downloads"`
	Author      AuthorRef    `json:"author"`
	Ratings     []RatingView `json:"ratings"`
	CreatedAt   time.Time    `json:"created_at"`
}

type ListResult struct {
	Products []ProductView `json:"products"`
	Total    int64         `json:"total"`
	Pages    int           `json:"pages"`
}

// NewProductView shapes a product for catalog responses: the author and
// every rating author are reduced to username references, everything
// else passes through.
func NewProductView(p *models.Product) ProductView {
	ratings := make([]RatingView, 0, len(p.Ratings))
	for _, r := range p.Ratings {
		ratings = append(ratings, RatingView{
			Score:     r.Score,
			Review:    r.Review,
			User:      AuthorRef{Username: r.User.Username},
			CreatedAt: r.CreatedAt,
		})
	}

	return ProductView{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Language:    p.Language,
		Category:    p.Category,
		Tags:        p.Tags,
		FileURL:     p.FileURL,
		Downloads:   p.Downloads,
		Author:      AuthorRef{Username: p.Author.Username},
		Ratings:     ratings,
		CreatedAt:   p.CreatedAt,
	}
}

// List returns one page of products matching the filter, newest first,
// plus the total match count and the page count. The secondary order on
// id keeps pagination deterministic for products sharing a timestamp.
func (e *Engine) List(filter Filter, page Page) (*ListResult, error) {
	query := filter.Apply(e.db.Model(&models.Product{}))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	if err := query.
		Preload("Author").Preload("Ratings.User").
		Order("created_at DESC, id DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, NewProductView(&products[i]))
	}

	return &ListResult{
		Products: views,
		Total:    total,
		Pages:    page.Pages(total),
	}, nil
}

// UserStats aggregates earnings and ratings over a user's authored
// products. The caller resolves the user first; userID is trusted here.
func (e *Engine) UserStats(userID uuid.UUID) (*UserStats, error) {
	var products []models.Product
	if err := e.db.Where("author_id = ?", userID).
		Preload("Ratings").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch authored products: %w", err)
	}

	var purchases int64
	if err := e.db.Model(&models.Purchase{}).
		Where("user_id = ?", userID).
		Count(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to count purchases: %w", err)
	}

	stats := ComputeStats(products, purchases)
	return &stats, nil
}
