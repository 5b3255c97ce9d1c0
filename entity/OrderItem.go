package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint `json:"-"`

	ItemID   string  `json:"id"` // menu item public id at time of sale
	Name     string  `json:"name"`
	Price    float64 `json:"price"` // unit price snapshot
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}
