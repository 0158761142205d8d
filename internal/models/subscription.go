package models

import "time"

type Subscription struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	Plan   string  `gorm:"size:20;not null" json:"plan"`
	Price  float64 `json:"price"`
	Status string  `gorm:"size:20;default:'ACTIVE'" json:"status"`

	AutoRenew   bool       `gorm:"default:true" json:"auto_renew"`
	StartedAt   time.Time  `json:"started_at"`
	ExpiresAt   time.Time  `json:"expires_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
