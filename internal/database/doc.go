// Package database provides the SQLite connection backing the persistent store.
//
// # Layout
//
//	database/
//	├── database.go      # Connection setup and migrations
//	└── kv/              # Key/value rows used as the storage medium
//
// # Usage
//
//	db, err := database.NewDatabase("./words.db")
//	repo := kv.NewRepository(db.DB)
//	store := storage.New(repo, logger)
//
// kv.Repository implements storage.Medium; the compile-time check lives in
// internal/interfaces.
package database
