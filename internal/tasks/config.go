package tasks

import "time"

// Config tunes the backlite client that grows the word list in the
// background. Attempts, timeout and retention are per queue, see
// AppendWordsTask.Config.
type Config struct {
	// Workers processing append batches. Batches serialise on the word list
	// lock, so more than a couple only adds idle goroutines.
	Workers int

	// ReleaseAfter returns a batch claimed by a crashed worker to the queue.
	ReleaseAfter time.Duration

	// CleanupInterval is how often expired batches are purged.
	CleanupInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		Workers:         2,
		ReleaseAfter:    5 * time.Minute,
		CleanupInterval: time.Hour,
	}
}
