// internal/models/purchase.go
package models

import "github.com/google/uuid"

// Purchase records that a user bought a product. Insert-only; a repeat
// purchase of the same product inserts another row. Each record is a
// single-row append, so concurrent purchases by the same user never
// race on a shared document.
type Purchase struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`

	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
