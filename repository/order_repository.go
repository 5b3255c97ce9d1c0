package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// FindAll returns orders newest first, items preloaded.
func (r *OrderRepository) FindAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Order("date DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// FindInRange returns orders with the given status inside [start, end]
// inclusive, items preloaded.
func (r *OrderRepository) FindInRange(start, end time.Time, status string) ([]entity.Order, error) {
	var orders []entity.Order
	db := r.DB.Preload("Items").Where("date BETWEEN ? AND ?", start, end)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Order("date DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&entity.Order{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&entity.OrderItem{}, "order_id = ?", id).Error
	})
}

// DeleteInRange removes all orders dated inside [start, end] inclusive and
// returns how many were removed.
func (r *OrderRepository) DeleteInRange(start, end time.Time) (int64, error) {
	var deleted int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&entity.Order{}).
			Where("date BETWEEN ? AND ?", start, end).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Delete(&entity.OrderItem{}, "order_id IN ?", ids).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.Order{}, ids)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}
