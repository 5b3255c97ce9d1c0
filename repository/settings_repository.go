package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// GetOrCreate returns the singleton settings row, creating it with defaults
// on first access.
func (r *SettingsRepository) GetOrCreate() (*entity.Settings, error) {
	var s entity.Settings
	err := r.DB.First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = entity.Settings{
			ShopName:           "My Restaurant",
			SoundNotifications: true,
			AutoSaveOrders:     false,
		}
		if err := r.DB.Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Save(s *entity.Settings) error {
	return r.DB.Save(s).Error
}
