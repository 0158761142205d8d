package models

import "time"

type MedicalRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetID uint `json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"pet"`

	VeterinarianID uint `json:"veterinarian_id"`
	Veterinarian   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"veterinarian"`

	VisitDate    time.Time `json:"visit_date"`
	Diagnosis    string    `gorm:"size:255" json:"diagnosis"`
	Treatment    string    `gorm:"size:255" json:"treatment"`
	Prescription string    `gorm:"size:255" json:"prescription"`
	Notes        string    `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
