package database

import (
	"errors"

	"lru-cache-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrRecordNotFound is returned when no row exists for a key.
var ErrRecordNotFound = errors.New("record not found")

// RecordStore reads and writes records. It is the source of truth the cache fronts.
type RecordStore struct {
	db *gorm.DB
}

// NewRecordStore wraps db.
func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{db: db}
}

// Find loads the record stored under key.
func (s *RecordStore) Find(key string) (*models.Record, error) {
	var rec models.Record
	if err := s.db.Where("record_key = ?", key).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// Save inserts or overwrites the record under key.
func (s *RecordStore) Save(key, value string) (*models.Record, error) {
	rec := models.Record{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return nil, err
	}
	return s.Find(key)
}

// Delete removes the record under key and reports whether one existed.
func (s *RecordStore) Delete(key string) (bool, error) {
	result := s.db.Where("record_key = ?", key).Delete(&models.Record{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Count returns the number of stored records.
func (s *RecordStore) Count() (int64, error) {
	var total int64
	if err := s.db.Model(&models.Record{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
