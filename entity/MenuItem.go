package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	ItemID      string  `gorm:"uniqueIndex" json:"id"` // stable public id, referenced by cart line items
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"` // URL or /uploads path
}
