package entities

import (
	"time"
)

// KVEntry is one row of the key/value table backing the persistent store.
type KVEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// Known storage keys
const (
	StorageKeyWords     = "personal_dictionary_words"
	StorageKeyPositions = "personal_dictionary_positions"
	StorageKeyLanguage  = "dictionaryLanguage"
)
