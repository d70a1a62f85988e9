// Package cli implements the offline maintenance commands. Each command
// opens the configured storage medium directly, so it must not run against a
// SQLite file or Redis prefix that a live server is writing to.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vAhyThe/words/internal/config"
	"github.com/vAhyThe/words/internal/entrypoint"
	"github.com/vAhyThe/words/internal/logging"
)

// storageFlags selects the storage medium a command works on. Unset flags
// fall back to the environment configuration.
type storageFlags struct {
	DatabasePath string
	Backend      string
	Verbose      bool

	// Config overrides the environment configuration. Used by tests.
	Config *config.Config
	// Out receives command output, os.Stdout when nil.
	Out io.Writer
}

func (f *storageFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.DatabasePath, "db", "", "Path to the SQLite database (default from DATABASE_PATH or "+config.DefaultDatabasePath+")")
	fs.StringVar(&f.Backend, "backend", "", "Storage backend: sqlite, memory or redis (default from STORAGE_BACKEND)")
	fs.BoolVar(&f.Verbose, "verbose", false, "Enable verbose logging")
}

func (f *storageFlags) config() *config.Config {
	cfg := f.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if f.DatabasePath != "" {
		cfg.Database.Path = f.DatabasePath
	}
	if f.Backend != "" {
		cfg.Storage.Backend = config.StorageBackend(f.Backend)
	}
	return cfg
}

func (f *storageFlags) openApp() (*entrypoint.App, error) {
	cfg := f.config()

	level := "warn"
	if f.Verbose {
		level = "debug"
	}
	logger := logging.New().WithLevel(level).Make()

	app, err := entrypoint.NewApp(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return app, nil
}

func (f *storageFlags) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

// languageOr returns language, or the configured default when empty.
func languageOr(language string, cfg *config.Config) string {
	if language != "" {
		return language
	}
	return cfg.Dictionary.Language
}
