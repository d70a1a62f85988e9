package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog"

	"github.com/vAhyThe/words/internal/entities"
)

const AppendWordsQueueName = "append_words"

// WordAppender grows the word list. Implemented by *wordlist.Manager.
type WordAppender interface {
	AppendMore(batchSize int, language string) ([]entities.WordEntry, error)
}

// AppendWordsTask generates one more batch of words in the background.
type AppendWordsTask struct {
	BatchSize int    `json:"batch_size"`
	Language  string `json:"language"`
}

// Config returns the queue configuration for batch growth tasks. Generation
// is local and cheap, so a single attempt is enough; a failure is a rejected
// batch size that a retry would not fix.
func (t AppendWordsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        AppendWordsQueueName,
		MaxAttempts: 1,
		Backoff:     10 * time.Second,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// AppendWordsProcessor creates a processor function for AppendWordsTask.
func AppendWordsProcessor(appender WordAppender, logger zerolog.Logger) backlite.QueueProcessor[AppendWordsTask] {
	return func(ctx context.Context, task AppendWordsTask) error {
		if appender == nil {
			return errors.New("word appender not configured")
		}

		added, err := appender.AppendMore(task.BatchSize, task.Language)
		if err != nil {
			return fmt.Errorf("append %d words: %w", task.BatchSize, err)
		}

		logger.Info().Int("added", len(added)).Str("language", task.Language).Msg("appended words in background")
		return nil
	}
}

// NewAppendWordsQueue creates a backlite queue for batch growth tasks.
func NewAppendWordsQueue(appender WordAppender, logger zerolog.Logger) backlite.Queue {
	return backlite.NewQueue(AppendWordsProcessor(appender, logger))
}
