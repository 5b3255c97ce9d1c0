package entity

import (
	"time"
)

// PendingOrder is a named, saved snapshot of a cart ("Table 3",
// "Customer A"), inactive until loaded back into the cart. Stored as JSON
// in the key-value store, not as rows.
type PendingOrder struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Items       []LineItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
	CreatedAt   time.Time  `json:"createdAt"`
}
