package storage

import (
	"errors"
	"fmt"
	"sync"
)

// ErrQuotaExceeded is returned by a size-bounded medium when a write would
// grow it past its quota.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Medium is a synchronous key/value medium holding raw string values.
type Medium interface {
	// Get returns the value under key; ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}

// MemoryMedium is an in-process Medium bounded by a byte quota counted over
// keys and values, in the manner of browser local storage.
type MemoryMedium struct {
	mu    sync.Mutex
	data  map[string]string
	used  int
	quota int
}

// DefaultQuotaBytes matches the usual local storage budget of a browser origin.
const DefaultQuotaBytes = 5 * 1024 * 1024

// NewMemoryMedium creates an empty medium. A quota <= 0 means unbounded.
func NewMemoryMedium(quota int) *MemoryMedium {
	return &MemoryMedium{
		data:  make(map[string]string),
		quota: quota,
	}
}

func (m *MemoryMedium) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.data[key]
	return value, ok, nil
}

func (m *MemoryMedium) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	used := m.used
	if old, ok := m.data[key]; ok {
		used -= len(key) + len(old)
	}
	used += len(key) + len(value)

	if m.quota > 0 && used > m.quota {
		return fmt.Errorf("set %q (%d of %d bytes): %w", key, used, m.quota, ErrQuotaExceeded)
	}

	m.data[key] = value
	m.used = used
	return nil
}

func (m *MemoryMedium) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.data[key]; ok {
		m.used -= len(key) + len(old)
		delete(m.data, key)
	}
	return nil
}

// Used reports the bytes currently held.
func (m *MemoryMedium) Used() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.used
}
