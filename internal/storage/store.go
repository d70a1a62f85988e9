// Package storage persists whole JSON values under fixed keys.
//
// The Store never returns errors to its callers: failed writes are logged
// and skipped, failed reads yield the caller's default. The in-memory state
// of the caller stays authoritative for the running process.
//
// There is no locking across processes. Two writers sharing a medium
// silently overwrite each other.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vAhyThe/words/internal/entities"
	"github.com/vAhyThe/words/internal/metrics"
)

// ErrUnavailable is logged when the store has no medium.
var ErrUnavailable = errors.New("storage medium unavailable")

// DefaultLanguage is returned by LoadLanguage when nothing is stored.
const DefaultLanguage = "en"

type Store struct {
	medium Medium
	log    zerolog.Logger
}

func New(medium Medium, logger zerolog.Logger) *Store {
	return &Store{
		medium: medium,
		log:    logger,
	}
}

// Save encodes value as JSON and writes it under key. Failures are logged.
func (s *Store) Save(key string, value any) {
	if err := s.save(key, value); err != nil {
		metrics.RecordStorageFailure("save", key)
		s.log.Error().Err(err).Str("key", key).Msg("error saving to storage")
	}
}

func (s *Store) save(key string, value any) error {
	if s.medium == nil {
		return ErrUnavailable
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return s.medium.Set(key, string(data))
}

// Load decodes the value under key into dst. It reports false, leaving dst
// untouched, when the key is absent or the value cannot be read.
func (s *Store) Load(key string, dst any) bool {
	if s.medium == nil {
		metrics.RecordStorageFailure("load", key)
		s.log.Error().Err(ErrUnavailable).Str("key", key).Msg("error loading from storage")
		return false
	}

	raw, ok, err := s.medium.Get(key)
	if err != nil {
		metrics.RecordStorageFailure("load", key)
		s.log.Error().Err(err).Str("key", key).Msg("error loading from storage")
		return false
	}
	if !ok || raw == "" {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		metrics.RecordStorageFailure("decode", key)
		s.log.Error().Err(err).Str("key", key).Msg("error decoding stored value")
		return false
	}
	return true
}

// LoadOr returns the value stored under key, or def when it cannot be loaded.
func LoadOr[T any](s *Store, key string, def T) T {
	var value T
	if !s.Load(key, &value) {
		return def
	}
	return value
}

// Remove deletes key. Failures are logged.
func (s *Store) Remove(key string) {
	if s.medium == nil {
		s.log.Error().Err(ErrUnavailable).Str("key", key).Msg("error removing from storage")
		return
	}
	if err := s.medium.Remove(key); err != nil {
		metrics.RecordStorageFailure("remove", key)
		s.log.Error().Err(err).Str("key", key).Msg("error removing from storage")
	}
}

// Clear removes the word list and position map.
func (s *Store) Clear() {
	s.Remove(entities.StorageKeyWords)
	s.Remove(entities.StorageKeyPositions)
}

func (s *Store) SaveWords(words []entities.WordEntry) {
	if words == nil {
		words = []entities.WordEntry{}
	}
	s.Save(entities.StorageKeyWords, words)
}

// LoadWords returns the stored word list, or an empty list.
func (s *Store) LoadWords() []entities.WordEntry {
	words := LoadOr[[]entities.WordEntry](s, entities.StorageKeyWords, nil)
	if words == nil {
		return []entities.WordEntry{}
	}
	return words
}

func (s *Store) SavePositions(positions entities.PositionMap) {
	if positions == nil {
		positions = entities.PositionMap{}
	}
	s.Save(entities.StorageKeyPositions, positions)
}

// LoadPositions returns the stored position map, or an empty map.
func (s *Store) LoadPositions() entities.PositionMap {
	positions := LoadOr[entities.PositionMap](s, entities.StorageKeyPositions, nil)
	if positions == nil {
		return entities.PositionMap{}
	}
	return positions
}

// ClearStorage is an alias of Clear.
func (s *Store) ClearStorage() {
	s.Clear()
}

func (s *Store) SaveLanguage(language string) {
	s.Save(entities.StorageKeyLanguage, language)
}

// LoadLanguage returns the stored interface language, or DefaultLanguage.
func (s *Store) LoadLanguage() string {
	language := LoadOr(s, entities.StorageKeyLanguage, "")
	if language == "" {
		return DefaultLanguage
	}
	return language
}
