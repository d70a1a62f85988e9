package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vAhyThe/words/internal/config"
	"github.com/vAhyThe/words/internal/database"
	"github.com/vAhyThe/words/internal/database/kv"
	"github.com/vAhyThe/words/internal/logging"
	"github.com/vAhyThe/words/internal/storage"
	"github.com/vAhyThe/words/internal/wordlist"
	"github.com/vAhyThe/words/internal/wordsource"
)

// App holds the components shared by the HTTP server and the CLI commands.
type App struct {
	Config    *config.Config
	Log       zerolog.Logger
	Store     *storage.Store
	Generator *wordsource.Generator
	Manager   *wordlist.Manager

	// HealthChecks probe the storage medium, keyed by name.
	HealthChecks map[string]func(ctx context.Context) error

	closers []func() error
}

// NewApp opens the configured storage medium and loads the word list.
func NewApp(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	app := &App{
		Config:       cfg,
		Log:          logger,
		HealthChecks: make(map[string]func(ctx context.Context) error),
	}

	medium, err := app.openMedium(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Store = storage.New(medium, logging.Component(logger, "storage"))
	app.Generator = wordsource.New(logging.Component(logger, "wordsource"))
	app.Manager = wordlist.New(
		app.Generator,
		app.Store,
		logging.Component(logger, "wordlist"),
		wordlist.WithBatchSize(cfg.Dictionary.BatchSize),
		wordlist.WithMaxCount(cfg.Dictionary.MaxCount),
		wordlist.WithDefaultLanguage(cfg.Dictionary.Language),
	)
	return app, nil
}

func (a *App) openMedium(ctx context.Context) (storage.Medium, error) {
	cfg := a.Config

	switch cfg.Storage.Backend {
	case config.StorageBackendSQLite, "":
		db, err := database.NewDatabaseWithLogLevel(cfg.Database.Path, gormLogLevel(cfg.Log.Level))
		if err != nil {
			return nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		a.HealthChecks["storage"] = func(context.Context) error { return db.Ping() }
		a.Log.Info().Str("path", cfg.Database.Path).Msg("using sqlite storage")
		return kv.NewRepository(db.DB), nil

	case config.StorageBackendMemory:
		quota := cfg.Storage.QuotaBytes
		medium := storage.NewMemoryMedium(quota)
		a.HealthChecks["storage"] = func(context.Context) error {
			// Unhealthy once writes are about to start failing
			if used := medium.Used(); quota > 0 && used > quota-quota/10 {
				return fmt.Errorf("memory storage uses %d of %d bytes: %w", used, quota, storage.ErrQuotaExceeded)
			}
			return nil
		}
		a.Log.Warn().Int("quota_bytes", quota).Msg("using in-memory storage, data is lost on exit")
		return medium, nil

	case config.StorageBackendRedis:
		medium, err := storage.NewRedisMedium(ctx, cfg.Storage.RedisURL, cfg.Storage.RedisPrefix)
		if err != nil {
			return nil, fmt.Errorf("open redis storage: %w", err)
		}
		a.closers = append(a.closers, medium.Close)
		a.HealthChecks["storage"] = medium.Ping
		a.Log.Info().Str("prefix", cfg.Storage.RedisPrefix).Msg("using redis storage")
		return medium, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// Close releases the storage medium.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// NewLogger builds the global logger from configuration.
func NewLogger(cfg *config.Config) zerolog.Logger {
	return logging.New().
		WithLevel(cfg.Log.Level).
		WithFormat(cfg.Log.Format).
		MakeGlobal()
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "debug", "trace":
		return gormlogger.Info
	case "error", "fatal", "panic":
		return gormlogger.Error
	case "disabled":
		return gormlogger.Silent
	default:
		return gormlogger.Warn
	}
}
