package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/vAhyThe/words/internal/database/kv"
	"github.com/vAhyThe/words/internal/http"
	"github.com/vAhyThe/words/internal/scheduler"
	"github.com/vAhyThe/words/internal/storage"
	"github.com/vAhyThe/words/internal/tasks"
	"github.com/vAhyThe/words/internal/wordlist"
	"github.com/vAhyThe/words/internal/wordsource"
)

// =============================================================================
// Storage Media
// =============================================================================

var _ storage.Medium = (*kv.Repository)(nil)
var _ storage.Medium = (*storage.MemoryMedium)(nil)
var _ storage.Medium = (*storage.RedisMedium)(nil)

// =============================================================================
// Word List
// =============================================================================

var _ wordlist.Store = (*storage.Store)(nil)
var _ wordlist.WordSource = (*wordsource.Generator)(nil)

// =============================================================================
// HTTP Controllers
// =============================================================================

var _ http.WordStore = (*wordlist.Manager)(nil)
var _ http.WordSeeder = (*wordlist.Manager)(nil)
var _ http.PreferenceStore = (*storage.Store)(nil)
var _ http.TaskQueue = (*tasks.Client)(nil)

// =============================================================================
// Background Work
// =============================================================================

var _ tasks.WordAppender = (*wordlist.Manager)(nil)
var _ scheduler.WordLister = (*wordlist.Manager)(nil)
