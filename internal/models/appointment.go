package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetID uint `json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"pet"`

	ProviderID uint `json:"provider_id"`
	Provider   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"provider"`

	ServiceType string `gorm:"size:20;default:'MEDICAL'" json:"service_type"`

	StartTime   time.Time `json:"start_time"`
	DurationMin int       `gorm:"default:30" json:"duration_min"`

	Status string `gorm:"size:20;default:'SCHEDULED'" json:"status"`

	Reason string `gorm:"size:255" json:"reason"`
	Notes  string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
