package http

import (
	"context"

	"github.com/mikestefanello/backlite"

	"github.com/vAhyThe/words/internal/entities"
)

// Each controller depends on the narrowest interface it needs. All word
// interfaces are implemented by *wordlist.Manager.

// WordReader provides read access to the word list.
type WordReader interface {
	Count() int
	Get(id string) (entities.WordEntry, bool)
	Search(query string) []entities.WordEntry
	Page(offset, limit int) ([]entities.WordEntry, int)
}

// WordEditor mutates the word list.
type WordEditor interface {
	AppendMore(batchSize int, language string) ([]entities.WordEntry, error)
	AddWord(text string) (entities.WordEntry, error)
	UpdateWord(id, text string) (entities.WordEntry, error)
	DeleteWord(id string) bool
	Reorder(id string, newPosition int) ([]entities.WordEntry, error)
	ClearAll()
}

// WordStore combines read and write access for the words controller.
type WordStore interface {
	WordReader
	WordEditor
}

// WordSeeder drives the first-run setup flow.
type WordSeeder interface {
	HasExistingData() bool
	Count() int
	Seed(targetCount int, language string) ([]entities.WordEntry, bool, error)
}

// PreferenceStore persists the interface language. Implemented by
// *storage.Store.
type PreferenceStore interface {
	LoadLanguage() string
	SaveLanguage(language string)
}

// TaskQueue enqueues background work and reports its status. Implemented by
// *tasks.Client.
type TaskQueue interface {
	Enqueue(ctx context.Context, task backlite.Task) (string, error)
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error
