package config

// Default paths and limits
const (
	// DefaultDatabasePath is the default path for the SQLite key-value store
	DefaultDatabasePath = "./words.db"

	// DefaultBackupDir is where scheduled word list backups are written
	DefaultBackupDir = "./backups"

	// DefaultStorageQuotaBytes caps the in-memory storage medium
	DefaultStorageQuotaBytes = 5 * 1024 * 1024
)
