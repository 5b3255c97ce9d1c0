package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
)

// KVRepository is the gorm-backed implementation of kv.Store.
type KVRepository struct {
	DB *gorm.DB
}

func NewKVRepository(db *gorm.DB) *KVRepository {
	return &KVRepository{DB: db}
}

func (r *KVRepository) Get(key string) (string, bool) {
	var e entity.KVEntry
	// missing key and broken store both degrade to "absent"
	if err := r.DB.First(&e, "key = ?", key).Error; err != nil {
		return "", false
	}
	return e.Value, true
}

func (r *KVRepository) Set(key, value string) error {
	e := entity.KVEntry{Key: key, Value: value}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&e).Error
}

func (r *KVRepository) Remove(key string) error {
	return r.DB.Delete(&entity.KVEntry{}, "key = ?", key).Error
}
