// internal/models/user.go
package models

import "time"

type User struct {
	BaseModel
	Username     string     `json:"username" gorm:"index;size:50;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	AvatarURL    string     `json:"avatar_url,omitempty" gorm:"size:512"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`

	// Relationships. Owned and purchased lists are ordered by created_at
	// when loaded through the services.
	Products  []Product  `json:"products,omitempty" gorm:"foreignKey:AuthorID"`
	Purchases []Purchase `json:"purchases,omitempty" gorm:"foreignKey:UserID"`
}

// Summary is the public shape returned by auth endpoints. Password hash
// and soft-delete bookkeeping never leave the server.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
	}
}
