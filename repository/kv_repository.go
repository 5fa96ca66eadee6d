package repository

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/entity"
)

// KVRepository backs Store with the kv_entries table.
type KVRepository struct{ DB *gorm.DB }

func NewKVRepository(db *gorm.DB) *KVRepository { return &KVRepository{DB: db} }

func (r *KVRepository) Get(key string, dest any) bool {
	var row entity.KVEntry
	err := r.DB.Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	}
	if err != nil {
		return false
	}
	// malformed stored JSON falls back to the caller's default
	if err := json.Unmarshal([]byte(row.Value), dest); err != nil {
		return false
	}
	return true
}

func (r *KVRepository) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	row := entity.KVEntry{Key: key, Value: string(raw)}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error
}

func (r *KVRepository) Delete(key string) error {
	return r.DB.Where("key = ?", key).Delete(&entity.KVEntry{}).Error
}
