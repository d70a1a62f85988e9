package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vAhyThe/words/internal/config"
	"github.com/vAhyThe/words/internal/entities"
	"github.com/vAhyThe/words/internal/scheduler"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Database: config.Database{Path: filepath.Join(dir, "words.db")},
		Storage:  config.Storage{Backend: config.StorageBackendSQLite},
		Dictionary: config.Dictionary{
			TargetCount: 8,
			Language:    "en",
			BatchSize:   3,
		},
		Backup: config.Backup{Dir: filepath.Join(dir, "backups"), Keep: 2},
	}
}

// flagsFor points a command at cfg and captures its output.
func flagsFor(cfg *config.Config) (storageFlags, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return storageFlags{Config: cfg, Out: out}, out
}

func TestSeedCommand(t *testing.T) {
	cfg := testConfig(t)

	flags, out := flagsFor(cfg)
	cmd := &SeedCommand{storageFlags: flags}
	require.NoError(t, cmd.ParseFlags([]string{"-lang", "cs"}))
	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), "Generated 8 cs words")

	flags, out = flagsFor(cfg)
	again := &SeedCommand{storageFlags: flags, Count: 50}
	require.NoError(t, again.Run())
	assert.Contains(t, out.String(), "already exists with 8 words")
}

func TestSeedCommand_ParseFlags(t *testing.T) {
	cmd := NewSeedCommand()

	require.NoError(t, cmd.ParseFlags([]string{"-count", "30", "-lang", "de", "-db", "/tmp/x.db", "-backend", "memory"}))

	assert.Equal(t, 30, cmd.Count)
	assert.Equal(t, "de", cmd.Language)
	cfg := cmd.config()
	assert.Equal(t, "/tmp/x.db", cfg.Database.Path)
	assert.Equal(t, config.StorageBackendMemory, cfg.Storage.Backend)

	assert.Error(t, NewSeedCommand().ParseFlags([]string{"-count", "-1"}))
}

func TestAppendCommand(t *testing.T) {
	cfg := testConfig(t)

	flags, out := flagsFor(cfg)
	cmd := &AppendCommand{storageFlags: flags}
	require.NoError(t, cmd.ParseFlags(nil))
	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), "Added 3 words, 3 total")

	flags, out = flagsFor(cfg)
	cmd = &AppendCommand{storageFlags: flags, Count: 2}
	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), "Added 2 words, 5 total")
	assert.Contains(t, out.String(), "    3  ")
}

func TestAddCommand(t *testing.T) {
	cfg := testConfig(t)

	flags, out := flagsFor(cfg)
	cmd := &AddCommand{storageFlags: flags}
	require.NoError(t, cmd.ParseFlags([]string{"ice", "cream"}))
	assert.Equal(t, "ice cream", cmd.Text)
	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), `Added "ice cream" at position 0`)

	assert.Error(t, NewAddCommand().ParseFlags([]string{"  "}))
	assert.Error(t, NewAddCommand().ParseFlags(nil))
}

func TestListCommand(t *testing.T) {
	cfg := testConfig(t)
	for _, text := range []string{"Apple", "banana", "Cherry"} {
		flags, _ := flagsFor(cfg)
		require.NoError(t, (&AddCommand{storageFlags: flags, Text: text}).Run())
	}

	t.Run("table", func(t *testing.T) {
		flags, out := flagsFor(cfg)
		require.NoError(t, (&ListCommand{storageFlags: flags, Offset: 1, Limit: 1}).Run())
		assert.Contains(t, out.String(), "banana")
		assert.NotContains(t, out.String(), "Apple")
		assert.Contains(t, out.String(), "1 of 3 words")
	})

	t.Run("search as json", func(t *testing.T) {
		flags, out := flagsFor(cfg)
		require.NoError(t, (&ListCommand{storageFlags: flags, Query: "AN", JSON: true}).Run())

		var words []entities.WordEntry
		require.NoError(t, json.Unmarshal(out.Bytes(), &words))
		require.Len(t, words, 1)
		assert.Equal(t, "banana", words[0].Text)
	})

	t.Run("negative offset", func(t *testing.T) {
		assert.Error(t, NewListCommand().ParseFlags([]string{"-offset", "-2"}))
	})
}

func TestClearCommand(t *testing.T) {
	cfg := testConfig(t)
	flags, _ := flagsFor(cfg)
	require.NoError(t, (&AppendCommand{storageFlags: flags, Count: 4}).Run())

	assert.Error(t, NewClearCommand().ParseFlags(nil), "requires -yes")

	flags, out := flagsFor(cfg)
	cmd := &ClearCommand{storageFlags: flags}
	require.NoError(t, cmd.ParseFlags([]string{"-yes"}))
	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), "Removed 4 words")

	flags, out = flagsFor(cfg)
	require.NoError(t, (&ListCommand{storageFlags: flags}).Run())
	assert.Contains(t, out.String(), "0 of 0 words")
}

func TestBackupCommand(t *testing.T) {
	cfg := testConfig(t)
	flags, _ := flagsFor(cfg)
	require.NoError(t, (&AppendCommand{storageFlags: flags, Count: 2}).Run())

	flags, out := flagsFor(cfg)
	cmd := &BackupCommand{storageFlags: flags}
	require.NoError(t, cmd.ParseFlags(nil))
	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), "Wrote 2 words")

	paths, err := scheduler.ListBackups(cfg.Backup.Dir)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	words, err := scheduler.ReadBackup(paths[0])
	require.NoError(t, err)
	assert.Len(t, words, 2)
}
