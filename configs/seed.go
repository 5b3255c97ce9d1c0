package configs

import (
	"github.com/sirupsen/logrus"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
)

// Seed starter categories and menu on an empty database so the storefront
// is usable out of the box.
func SeedCatalog() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		cats := []entity.Category{
			{Name: "Fresh Juices", DisplayOrder: 1},
			{Name: "Milkshakes", DisplayOrder: 2},
		}
		if err := db.Create(&cats).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{ItemID: "juice-1", Name: "Orange Juice", Category: "Fresh Juices", Description: "Fresh and tangy orange juice", Price: 50},
		{ItemID: "juice-2", Name: "Mango Juice", Category: "Fresh Juices", Description: "Sweet and delicious mango juice", Price: 60},
		{ItemID: "juice-3", Name: "Watermelon Juice", Category: "Fresh Juices", Description: "Refreshing watermelon juice", Price: 55},
		{ItemID: "juice-4", Name: "Mosambi Juice", Category: "Fresh Juices", Description: "Sweet lime juice", Price: 50},
		{ItemID: "juice-5", Name: "Pineapple Juice", Category: "Fresh Juices", Description: "Tropical pineapple juice", Price: 55},
		{ItemID: "juice-6", Name: "Pomegranate Juice", Category: "Fresh Juices", Description: "Rich pomegranate juice", Price: 70},
		{ItemID: "juice-7", Name: "Apple Juice", Category: "Fresh Juices", Description: "Crisp apple juice", Price: 55},
		{ItemID: "juice-8", Name: "Mixed Fruit Juice", Category: "Fresh Juices", Description: "Blend of seasonal fruits", Price: 65},
		{ItemID: "shake-1", Name: "Mango Milkshake", Category: "Milkshakes", Description: "Creamy mango milkshake", Price: 80},
		{ItemID: "shake-2", Name: "Chocolate Milkshake", Category: "Milkshakes", Description: "Classic chocolate milkshake", Price: 85},
		{ItemID: "shake-3", Name: "Strawberry Milkshake", Category: "Milkshakes", Description: "Strawberry milkshake", Price: 85},
		{ItemID: "shake-4", Name: "Vanilla Milkshake", Category: "Milkshakes", Description: "Smooth vanilla milkshake", Price: 75},
		{ItemID: "shake-5", Name: "Banana Milkshake", Category: "Milkshakes", Description: "Banana milkshake", Price: 75},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}
	logrus.WithField("items", len(items)).Info("seeded starter menu")
	return nil
}

// Make sure the settings singleton exists before the first request.
func SeedSettings() error {
	db := DB()
	var count int64
	if err := db.Model(&entity.Settings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&entity.Settings{
		ShopName:           "My Restaurant",
		SoundNotifications: true,
		AutoSaveOrders:     false,
	}).Error
}
