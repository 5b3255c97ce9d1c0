package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name         string `gorm:"uniqueIndex" json:"name"`
	DisplayOrder int    `json:"displayOrder"`
}
