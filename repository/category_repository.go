package repository

import (
	"gorm.io/gorm"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) FindAll() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("display_order, name").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) FindByName(name string) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) Create(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *CategoryRepository) Update(c *entity.Category) error {
	return r.DB.Save(c).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CategoryRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Category{}).Count(&n).Error
	return n, err
}
