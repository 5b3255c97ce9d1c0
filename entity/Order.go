package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	OrderNumber string    `gorm:"uniqueIndex" json:"orderNumber"`
	TotalAmount float64   `json:"totalAmount"`
	Date        time.Time `json:"date"`
	Status      string    `gorm:"default:completed" json:"status"`

	// preload on detail + sales aggregation
	Items []OrderItem `json:"items"`
}
