package storage

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vAhyThe/words/internal/database"
	"github.com/vAhyThe/words/internal/database/kv"
	"github.com/vAhyThe/words/internal/entities"
)

// failingMedium fails every call with err.
type failingMedium struct {
	err error
}

func (f failingMedium) Get(string) (string, bool, error) { return "", false, f.err }
func (f failingMedium) Set(string, string) error         { return f.err }
func (f failingMedium) Remove(string) error              { return f.err }

func newTestStore(t *testing.T, medium Medium) (*Store, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	return New(medium, zerolog.New(buf)), buf
}

func sampleWords() []entities.WordEntry {
	return []entities.WordEntry{
		{ID: "1", Text: "word1", Position: 0, CreatedAt: "2023-01-01T00:00:00.000Z", Source: entities.WordSourceLocal},
		{ID: "2", Text: "word2", Position: 1, CreatedAt: "2023-01-01T00:00:00.000Z", Source: entities.WordSourceManual},
	}
}

func TestStore_SaveWords(t *testing.T) {
	t.Run("saves words under the word list key", func(t *testing.T) {
		medium := NewMemoryMedium(0)
		store, _ := newTestStore(t, medium)

		store.SaveWords(sampleWords())

		raw, ok, err := medium.Get(entities.StorageKeyWords)
		require.NoError(t, err)
		require.True(t, ok)
		assert.JSONEq(t, `[
			{"id":"1","text":"word1","position":0,"createdAt":"2023-01-01T00:00:00.000Z","source":"local"},
			{"id":"2","text":"word2","position":1,"createdAt":"2023-01-01T00:00:00.000Z","source":"manual"}
		]`, raw)
	})

	t.Run("handles errors gracefully", func(t *testing.T) {
		store, logs := newTestStore(t, failingMedium{err: errors.New("storage error")})

		assert.NotPanics(t, func() { store.SaveWords(nil) })
		assert.Contains(t, logs.String(), "error saving to storage")
		assert.Contains(t, logs.String(), "storage error")
	})

	t.Run("quota exceeded is swallowed", func(t *testing.T) {
		medium := NewMemoryMedium(64)
		store, logs := newTestStore(t, medium)

		store.SaveWords(sampleWords())

		_, ok, _ := medium.Get(entities.StorageKeyWords)
		assert.False(t, ok)
		assert.Contains(t, logs.String(), ErrQuotaExceeded.Error())
	})
}

func TestStore_LoadWords(t *testing.T) {
	t.Run("loads saved words", func(t *testing.T) {
		store, _ := newTestStore(t, NewMemoryMedium(0))
		words := sampleWords()

		store.SaveWords(words)

		assert.Equal(t, words, store.LoadWords())
	})

	t.Run("returns empty list when nothing stored", func(t *testing.T) {
		store, _ := newTestStore(t, NewMemoryMedium(0))

		words := store.LoadWords()

		assert.NotNil(t, words)
		assert.Empty(t, words)
	})

	t.Run("handles JSON parse errors gracefully", func(t *testing.T) {
		medium := NewMemoryMedium(0)
		require.NoError(t, medium.Set(entities.StorageKeyWords, "invalid json"))
		store, logs := newTestStore(t, medium)

		words := store.LoadWords()

		assert.Equal(t, []entities.WordEntry{}, words)
		assert.Contains(t, logs.String(), "error decoding stored value")
	})

	t.Run("stored null yields empty list", func(t *testing.T) {
		medium := NewMemoryMedium(0)
		require.NoError(t, medium.Set(entities.StorageKeyWords, "null"))
		store, _ := newTestStore(t, medium)

		assert.Equal(t, []entities.WordEntry{}, store.LoadWords())
	})

	t.Run("medium failure yields empty list", func(t *testing.T) {
		store, logs := newTestStore(t, failingMedium{err: errors.New("unavailable")})

		assert.Equal(t, []entities.WordEntry{}, store.LoadWords())
		assert.Contains(t, logs.String(), "error loading from storage")
	})

	t.Run("nil medium yields empty list", func(t *testing.T) {
		store, logs := newTestStore(t, nil)

		assert.Equal(t, []entities.WordEntry{}, store.LoadWords())
		assert.Contains(t, logs.String(), ErrUnavailable.Error())
	})
}

func TestStore_Positions(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		store, _ := newTestStore(t, NewMemoryMedium(0))
		positions := entities.PositionMap{"word1": 0, "word2": 1}

		store.SavePositions(positions)

		assert.Equal(t, positions, store.LoadPositions())
	})

	t.Run("returns empty map when nothing stored", func(t *testing.T) {
		store, _ := newTestStore(t, NewMemoryMedium(0))

		assert.Equal(t, entities.PositionMap{}, store.LoadPositions())
	})

	t.Run("handles save errors gracefully", func(t *testing.T) {
		store, logs := newTestStore(t, failingMedium{err: errors.New("storage error")})

		store.SavePositions(entities.PositionMap{"word1": 0})

		assert.Contains(t, logs.String(), "error saving to storage")
	})
}

func TestStore_ClearStorage(t *testing.T) {
	medium := NewMemoryMedium(0)
	store, _ := newTestStore(t, medium)
	store.SaveWords(sampleWords())
	store.SavePositions(entities.PositionsOf(sampleWords()))
	store.SaveLanguage("de")

	store.ClearStorage()

	assert.Equal(t, []entities.WordEntry{}, store.LoadWords())
	assert.Equal(t, entities.PositionMap{}, store.LoadPositions())
	for _, key := range []string{entities.StorageKeyWords, entities.StorageKeyPositions} {
		_, ok, err := medium.Get(key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
	// The language preference is not part of the word list state.
	assert.Equal(t, "de", store.LoadLanguage())
}

func TestStore_Clear_Errors(t *testing.T) {
	store, logs := newTestStore(t, failingMedium{err: errors.New("boom")})

	assert.NotPanics(t, store.Clear)
	assert.Equal(t, 2, strings.Count(logs.String(), "error removing from storage"))
}

func TestStore_Language(t *testing.T) {
	store, _ := newTestStore(t, NewMemoryMedium(0))

	assert.Equal(t, DefaultLanguage, store.LoadLanguage())

	store.SaveLanguage("cs")
	assert.Equal(t, "cs", store.LoadLanguage())
}

func TestLoadOr(t *testing.T) {
	store, _ := newTestStore(t, NewMemoryMedium(0))

	type settings struct {
		Count int      `json:"count"`
		Tags  []string `json:"tags"`
	}
	want := settings{Count: 3, Tags: []string{"a", "b"}}

	assert.Equal(t, settings{Count: -1}, LoadOr(store, "settings", settings{Count: -1}))

	store.Save("settings", want)
	assert.Equal(t, want, LoadOr(store, "settings", settings{}))
}

func TestStore_Save_EncodeFailure(t *testing.T) {
	medium := NewMemoryMedium(0)
	store, logs := newTestStore(t, medium)

	store.Save("bad", map[string]any{"ch": make(chan int)})

	_, ok, _ := medium.Get("bad")
	assert.False(t, ok)
	assert.Contains(t, logs.String(), "encode")
}

func TestStore_WithSQLiteMedium(t *testing.T) {
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	defer db.Close()

	store, _ := newTestStore(t, kv.NewRepository(db.DB))
	words := sampleWords()

	store.SaveWords(words)
	store.SavePositions(entities.PositionsOf(words))

	assert.Equal(t, words, store.LoadWords())
	assert.Equal(t, entities.PositionMap{"1": 0, "2": 1}, store.LoadPositions())

	store.Clear()
	assert.Empty(t, store.LoadWords())
	assert.Empty(t, store.LoadPositions())
}
