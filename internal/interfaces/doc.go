// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Storage
//
//   - storage.Medium: string key-value persistence (internal/storage/medium.go).
//     Implemented by kv.Repository (SQLite via gorm), storage.MemoryMedium
//     and storage.RedisMedium.
//   - wordlist.Store: JSON word list and position map on top of a Medium,
//     implemented by storage.Store.
//
// ## Word List
//
//   - wordlist.WordSource: batches of generated words (internal/wordsource).
//   - http.WordStore, http.WordSeeder: the controller views of wordlist.Manager.
//
// ## Background Work
//
//   - http.TaskQueue: enqueue and inspect tasks, implemented by tasks.Client.
//   - tasks.WordAppender and scheduler.WordLister: what background jobs need
//     from wordlist.Manager.
//
// # Adding a New Storage Medium
//
//  1. Implement storage.Medium:
//
//     type EtcdMedium struct { client *clientv3.Client }
//
//     func (m *EtcdMedium) Get(key string) (string, bool, error)
//     func (m *EtcdMedium) Set(key, value string) error
//     func (m *EtcdMedium) Remove(key string) error
//
//  2. Add a StorageBackend constant in internal/config and a case in
//     entrypoint.App.openMedium.
//
//  3. Add a compile-time check to checks.go.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
