package entity

import (
	"gorm.io/gorm"
)

// Settings is a singleton row; repository enforces find-or-create on the
// first record.
type Settings struct {
	gorm.Model
	ShopName           string `json:"shopName"`
	UpiID              string `json:"upiId"`
	SoundNotifications bool   `json:"soundNotifications"`
	AutoSaveOrders     bool   `json:"autoSaveOrders"`
}
