package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/vAhyThe/words/internal/entities"
)

const (
	backupPrefix     = "words-"
	backupSuffix     = ".json"
	backupTimeLayout = "20060102T150405Z"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// WordLister provides the word list to back up.
type WordLister interface {
	Words() []entities.WordEntry
}

// BackupConfig configures the backup scheduler.
type BackupConfig struct {
	Enabled  bool
	Schedule string
	Dir      string
	Keep     int // Newest files kept after each run, 0 keeps all
}

// ValidateSchedule checks a five-field cron expression.
func ValidateSchedule(schedule string) error {
	if _, err := cronParser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}
	return nil
}

// BackupScheduler periodically writes the word list to a JSON file.
type BackupScheduler struct {
	words  WordLister
	config BackupConfig
	log    zerolog.Logger
	now    func() time.Time

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	runMu      sync.Mutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewBackupScheduler(words WordLister, config BackupConfig, logger zerolog.Logger) *BackupScheduler {
	return &BackupScheduler{
		words:  words,
		config: config,
		log:    logger,
		now:    time.Now,
		cron:   cron.New(cron.WithParser(cronParser)),
	}
}

// Start begins the scheduler if backups are enabled.
func (s *BackupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.config.Enabled {
		s.log.Info().Msg("backup scheduler disabled")
		return nil
	}
	if s.config.Dir == "" {
		s.log.Warn().Msg("backup directory not configured, skipping")
		return nil
	}
	if err := ValidateSchedule(s.config.Schedule); err != nil {
		return err
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		if _, err := s.RunNow(); err != nil {
			s.log.Error().Err(err).Msg("scheduled backup failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule backup job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	s.log.Info().
		Str("schedule", s.config.Schedule).
		Str("dir", s.config.Dir).
		Time("next_run", s.cron.Entry(entryID).Next).
		Msg("backup scheduler started")

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running backup and stops the scheduler.
func (s *BackupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.isRunning = false
	s.cancelFunc = nil

	s.log.Info().Msg("backup scheduler stopped")
}

// IsRunning returns whether the scheduler is active
func (s *BackupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next backup will occur, or nil when stopped.
func (s *BackupScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	t := s.cron.Entry(s.entryID).Next
	return &t
}

// RunNow writes a backup immediately and returns its path.
func (s *BackupScheduler) RunNow() (string, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	words := s.words.Words()
	path, err := WriteBackup(s.config.Dir, words, s.now())
	if err != nil {
		return "", err
	}
	s.log.Info().Str("path", path).Int("count", len(words)).Msg("word list backed up")

	if s.config.Keep > 0 {
		removed, err := PruneBackups(s.config.Dir, s.config.Keep)
		if err != nil {
			s.log.Warn().Err(err).Msg("failed to prune old backups")
		} else if removed > 0 {
			s.log.Debug().Int("removed", removed).Msg("pruned old backups")
		}
	}
	return path, nil
}

// WriteBackup stores words in dir as a JSON array named after at. The file is
// written under a temporary name first and renamed into place.
func WriteBackup(dir string, words []entities.WordEntry, at time.Time) (string, error) {
	if words == nil {
		words = []entities.WordEntry{}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	data, err := json.MarshalIndent(words, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode backup: %w", err)
	}

	path := filepath.Join(dir, backupPrefix+at.UTC().Format(backupTimeLayout)+backupSuffix)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("rename backup: %w", err)
	}
	return path, nil
}

// ReadBackup loads a word list written by WriteBackup.
func ReadBackup(path string) ([]entities.WordEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	var words []entities.WordEntry
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("decode backup %s: %w", filepath.Base(path), err)
	}
	return words, nil
}

// ListBackups returns backup file paths in dir, oldest first.
func ListBackups(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list backups: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupSuffix) {
			continue
		}
		names = append(names, name)
	}
	// timestamps sort lexically
	sort.Strings(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// PruneBackups removes all but the newest keep backups and reports how many
// were removed.
func PruneBackups(dir string, keep int) (int, error) {
	paths, err := ListBackups(dir)
	if err != nil {
		return 0, err
	}
	if keep <= 0 || len(paths) <= keep {
		return 0, nil
	}

	removed := 0
	for _, path := range paths[:len(paths)-keep] {
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("remove %s: %w", filepath.Base(path), err)
		}
		removed++
	}
	return removed, nil
}
