package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Address      string `gorm:"size:255" json:"address"`
	City         string `gorm:"size:100" json:"city"`
	PostalCode   string `gorm:"size:20" json:"postal_code"`

	// Stored uppercase, compared case-insensitively. See internal/roles.
	Role string `gorm:"size:20;default:'CUSTOMER'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
