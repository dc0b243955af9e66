// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Title       string         `json:"title" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	Language    string         `json:"language" gorm:"size:50;index"`
	Category    string         `json:"category" gorm:"size:100;index"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	FileURL     string         `json:"file_url" gorm:"size:512;not null"`
	FileKey     string         `json:"-" gorm:"size:255"`
	AuthorID    uuid.UUID      `json:"author_id" gorm:"type:uuid;not null;index"`
	Downloads   int64          `json:"downloads" gorm:"default:0"`

	// Relationships
	Author  User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Ratings []Rating `json:"ratings,omitempty" gorm:"foreignKey:ProductID"`
}

// Rating is append-only. Score is constrained to [1,5] by the service
// layer; the same user may rate a product more than once.
type Rating struct {
	BaseModel
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Score     int       `json:"score" gorm:"not null"`
	Review    string    `json:"review" gorm:"type:text"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

const (
	RatingScoreMin = 1
	RatingScoreMax = 5
)
