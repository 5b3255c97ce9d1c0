package repository

import (
	"gorm.io/gorm"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) FindAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("category, name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByItemID(itemID string) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, "item_id = ?", itemID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) DeleteByItemID(itemID string) error {
	res := r.DB.Delete(&entity.MenuItem{}, "item_id = ?", itemID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MenuRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.MenuItem{}).Count(&n).Error
	return n, err
}
