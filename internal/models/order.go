package models

import "time"

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrderNumber string `gorm:"size:36;uniqueIndex;not null" json:"order_number"`

	CustomerID uint `json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	Status string  `gorm:"size:20;default:'PENDING'" json:"status"`
	Total  float64 `json:"total"`

	Items []OrderItem `json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrderID uint `json:"order_id"`

	ProductID uint    `json:"product_id"`
	Product   Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product"`

	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}
