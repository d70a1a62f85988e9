package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type StorageBackend string

const (
	StorageBackendSQLite StorageBackend = "sqlite" // gorm key-value table (default)
	StorageBackendMemory StorageBackend = "memory" // process memory, lost on exit
	StorageBackendRedis  StorageBackend = "redis"  // shared Redis instance
)

type (
	Config struct {
		HTTP
		Global
		Database
		Storage
		Dictionary
		Tasks
		Backup
		Log
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Storage struct {
		Backend     StorageBackend
		QuotaBytes  int
		RedisURL    string
		RedisPrefix string
	}
	Dictionary struct {
		TargetCount int    // Words generated on first setup
		Language    string // Word list language used when none is requested
		BatchSize   int    // Words per "load more" batch
		MaxCount    int    // Upper bound for one seed or "load more" request
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	Backup struct {
		Enabled  bool
		Schedule string // Cron format: "0 3 * * *" = daily at 03:00
		Dir      string
		Keep     int // Newest backup files kept, 0 keeps all
	}
	Log struct {
		Level  string
		Format string // "console" or "json"
	}
)

// NewConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func NewConfig() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8189)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Storage defaults
	v.SetDefault("storage_backend", string(StorageBackendSQLite))
	v.SetDefault("storage_quota_bytes", DefaultStorageQuotaBytes)
	v.SetDefault("redis_url", "redis://localhost:6379/0")
	v.SetDefault("redis_prefix", "words:")

	// Dictionary defaults
	v.SetDefault("dictionary_target_count", 200)
	v.SetDefault("dictionary_language", "en")
	v.SetDefault("dictionary_batch_size", 20)
	v.SetDefault("dictionary_max_count", 10000)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "5m")
	v.SetDefault("task_cleanup_interval", "1h")

	// Backup defaults
	v.SetDefault("backup_enabled", false)
	v.SetDefault("backup_schedule", "0 3 * * *")
	v.SetDefault("backup_dir", DefaultBackupDir)
	v.SetDefault("backup_keep", 7)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Storage: Storage{
			Backend:     StorageBackend(strings.ToLower(v.GetString("STORAGE_BACKEND"))),
			QuotaBytes:  v.GetInt("STORAGE_QUOTA_BYTES"),
			RedisURL:    v.GetString("REDIS_URL"),
			RedisPrefix: v.GetString("REDIS_PREFIX"),
		},
		Dictionary: Dictionary{
			TargetCount: v.GetInt("DICTIONARY_TARGET_COUNT"),
			Language:    v.GetString("DICTIONARY_LANGUAGE"),
			BatchSize:   v.GetInt("DICTIONARY_BATCH_SIZE"),
			MaxCount:    v.GetInt("DICTIONARY_MAX_COUNT"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Backup: Backup{
			Enabled:  v.GetBool("BACKUP_ENABLED"),
			Schedule: v.GetString("BACKUP_SCHEDULE"),
			Dir:      v.GetString("BACKUP_DIR"),
			Keep:     v.GetInt("BACKUP_KEEP"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
}
