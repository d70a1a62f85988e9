package scheduler

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vAhyThe/words/internal/entities"
)

type staticWords []entities.WordEntry

func (s staticWords) Words() []entities.WordEntry {
	return s
}

var sampleWords = staticWords{
	{ID: "a", Text: "Apple", Position: 0, CreatedAt: "2024-03-01T12:00:00.000Z", Source: entities.WordSourceLocal},
	{ID: "b", Text: "řeka", Position: 4, CreatedAt: "2024-03-01T12:00:00.000Z", Source: entities.WordSourceManual},
}

func TestValidateSchedule(t *testing.T) {
	assert.NoError(t, ValidateSchedule("0 3 * * *"))
	assert.NoError(t, ValidateSchedule("*/15 * * * *"))
	assert.Error(t, ValidateSchedule("not a schedule"))
	assert.Error(t, ValidateSchedule("0 0 3 * * *"), "seconds field is not accepted")
}

func TestWriteAndReadBackup(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "backups")
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	path, err := WriteBackup(dir, sampleWords, at)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "words-20240301T123000Z.json"), path)

	words, err := ReadBackup(path)
	require.NoError(t, err)
	assert.Equal(t, []entities.WordEntry(sampleWords), words)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestWriteBackup_EmptyList(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteBackup(dir, nil, time.Now())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestReadBackup_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words-broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := ReadBackup(path)
	assert.Error(t, err)

	_, err = ReadBackup(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestListBackups(t *testing.T) {
	t.Run("missing dir", func(t *testing.T) {
		paths, err := ListBackups(filepath.Join(t.TempDir(), "nope"))
		require.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("ignores unrelated files", func(t *testing.T) {
		dir := t.TempDir()
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		_, err := WriteBackup(dir, sampleWords, base.Add(time.Hour))
		require.NoError(t, err)
		_, err = WriteBackup(dir, sampleWords, base)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "words-dir.json"), 0o755))

		paths, err := ListBackups(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "words-20240101T000000Z.json"),
			filepath.Join(dir, "words-20240101T010000Z.json"),
		}, paths)
	})
}

func TestBackupScheduler_RunNowPrunes(t *testing.T) {
	dir := t.TempDir()
	s := NewBackupScheduler(sampleWords, BackupConfig{Dir: dir, Keep: 2}, zerolog.New(io.Discard))

	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	var written []string
	for i := 0; i < 4; i++ {
		current := at.Add(time.Duration(i) * time.Minute)
		s.now = func() time.Time { return current }
		path, err := s.RunNow()
		require.NoError(t, err)
		written = append(written, path)
	}

	paths, err := ListBackups(dir)
	require.NoError(t, err)
	assert.Equal(t, written[2:], paths)
}

func TestBackupScheduler_KeepZeroKeepsAll(t *testing.T) {
	dir := t.TempDir()
	s := NewBackupScheduler(sampleWords, BackupConfig{Dir: dir}, zerolog.New(io.Discard))

	for i := 0; i < 3; i++ {
		current := time.Date(2024, 5, 1, i, 0, 0, 0, time.UTC)
		s.now = func() time.Time { return current }
		_, err := s.RunNow()
		require.NoError(t, err)
	}

	paths, err := ListBackups(dir)
	require.NoError(t, err)
	assert.Len(t, paths, 3)
}

func TestBackupScheduler_Start(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		s := NewBackupScheduler(sampleWords, BackupConfig{Enabled: false, Schedule: "* * * * *", Dir: t.TempDir()}, zerolog.New(io.Discard))

		require.NoError(t, s.Start(context.Background()))
		assert.False(t, s.IsRunning())
		assert.Nil(t, s.NextRunTime())
	})

	t.Run("no directory", func(t *testing.T) {
		s := NewBackupScheduler(sampleWords, BackupConfig{Enabled: true, Schedule: "* * * * *"}, zerolog.New(io.Discard))

		require.NoError(t, s.Start(context.Background()))
		assert.False(t, s.IsRunning())
	})

	t.Run("invalid schedule", func(t *testing.T) {
		s := NewBackupScheduler(sampleWords, BackupConfig{Enabled: true, Schedule: "nope", Dir: t.TempDir()}, zerolog.New(io.Discard))

		assert.Error(t, s.Start(context.Background()))
		assert.False(t, s.IsRunning())
	})

	t.Run("start and stop", func(t *testing.T) {
		s := NewBackupScheduler(sampleWords, BackupConfig{Enabled: true, Schedule: "0 3 * * *", Dir: t.TempDir()}, zerolog.New(io.Discard))

		require.NoError(t, s.Start(context.Background()))
		assert.True(t, s.IsRunning())
		next := s.NextRunTime()
		require.NotNil(t, next)
		assert.Equal(t, 3, next.Hour())

		require.NoError(t, s.Start(context.Background()), "second start is a no-op")

		s.Stop()
		assert.False(t, s.IsRunning())
		s.Stop()
	})

	t.Run("context cancellation stops", func(t *testing.T) {
		s := NewBackupScheduler(sampleWords, BackupConfig{Enabled: true, Schedule: "0 3 * * *", Dir: t.TempDir()}, zerolog.New(io.Discard))
		ctx, cancel := context.WithCancel(context.Background())

		require.NoError(t, s.Start(ctx))
		cancel()

		assert.Eventually(t, func() bool { return !s.IsRunning() }, 2*time.Second, 10*time.Millisecond)
	})
}
