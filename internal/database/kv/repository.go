// Package kv provides database operations for raw key/value entries.
//
// # Usage
//
//	repo := kv.NewRepository(db)
//	value, ok, err := repo.Get("personal_dictionary_words")
package kv

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vAhyThe/words/internal/entities"
)

// Repository handles all key/value database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new key/value repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetEntry retrieves an entry by key.
func (r *Repository) GetEntry(key string) (*entities.KVEntry, error) {
	var entry entities.KVEntry
	err := r.db.Where("key = ?", key).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Get returns the raw value stored under key. A missing key is reported
// through ok, not as an error.
func (r *Repository) Get(key string) (string, bool, error) {
	entry, err := r.GetEntry(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set creates or updates an entry.
func (r *Repository) Set(key, value string) error {
	var entry entities.KVEntry
	result := r.db.Where("key = ?", key).First(&entry)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		entry = entities.KVEntry{
			Key:   key,
			Value: value,
		}
		return r.db.Create(&entry).Error
	} else if result.Error != nil {
		return result.Error
	}

	entry.Value = value
	return r.db.Save(&entry).Error
}

// Remove deletes an entry by key. Removing a missing key is not an error.
func (r *Repository) Remove(key string) error {
	return r.db.Where("key = ?", key).Delete(&entities.KVEntry{}).Error
}
