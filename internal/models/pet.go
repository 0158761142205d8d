package models

import "time"

type Pet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"owner"`

	Name        string     `gorm:"size:100;not null" json:"name"`
	Species     string     `gorm:"size:50" json:"species"`
	Breed       string     `gorm:"size:100" json:"breed"`
	Gender      string     `gorm:"size:10" json:"gender"`
	BirthDate   *time.Time `json:"birth_date"`
	WeightKg    float64    `json:"weight_kg"`
	MicrochipID string     `gorm:"size:50" json:"microchip_id"`
	Allergies   string     `gorm:"size:255" json:"allergies"`
	Notes       string     `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
