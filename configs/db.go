package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) error {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.Category{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Settings{},
		&entity.KVEntry{},
	)
}
