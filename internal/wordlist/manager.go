// Package wordlist owns the personal dictionary word list: generation,
// ordering, editing and synchronisation with the persistent store.
//
// Positions define display order. They are unique once persisted but need not
// be contiguous; deletes leave gaps and nothing compacts them.
package wordlist

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vAhyThe/words/internal/entities"
	"github.com/vAhyThe/words/internal/metrics"
)

// WordSource produces batches of word strings.
type WordSource interface {
	GenerateBatch(count int, language string) []string
}

// Store persists the word list and its position map.
type Store interface {
	LoadWords() []entities.WordEntry
	LoadPositions() entities.PositionMap
	SaveWords(words []entities.WordEntry)
	SavePositions(positions entities.PositionMap)
	Clear()
}

const (
	DefaultBatchSize = 20
	DefaultLanguage  = "en"
	DefaultMaxCount  = 10000

	// MaxPosition is the highest position a caller may request. Stored
	// positions above it are treated as corrupt and renumbered on load.
	MaxPosition = math.MaxInt32
)

type Option func(*Manager)

// WithBatchSize sets the batch size used when seeding a large list.
func WithBatchSize(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.batchSize = n
		}
	}
}

// WithDefaultLanguage sets the language used when callers pass none.
func WithDefaultLanguage(language string) Option {
	return func(m *Manager) {
		if language != "" {
			m.language = language
		}
	}
}

// WithMaxCount caps the number of words one Initialize or AppendMore call
// may generate.
func WithMaxCount(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxCount = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(m *Manager) {
		m.newID = newID
	}
}

// Manager holds the authoritative in-memory list. Every public method runs
// under one lock and persists the full list and position map after a
// successful mutation.
type Manager struct {
	mu     sync.Mutex
	words  []entities.WordEntry // display order
	source WordSource
	store  Store
	log    zerolog.Logger

	batchSize int
	maxCount  int
	language  string
	now       func() time.Time
	newID     func() string
}

// New creates a Manager and eagerly loads the stored list.
func New(source WordSource, store Store, logger zerolog.Logger, opts ...Option) *Manager {
	m := &Manager{
		source:    source,
		store:     store,
		log:       logger,
		batchSize: DefaultBatchSize,
		maxCount:  DefaultMaxCount,
		language:  DefaultLanguage,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.load()
	return m
}

func (m *Manager) load() {
	words := m.store.LoadWords()
	positions := m.store.LoadPositions()

	normalized, changed := m.normalize(words)
	m.words = normalized

	if !changed && !positionsMatch(positions, normalized) {
		m.log.Warn().Msg("position map out of sync with word list, rewriting")
		changed = true
	}
	if changed {
		m.persist()
	}

	metrics.SetWordListSize(len(m.words))
	m.log.Info().Int("count", len(m.words)).Msg("word list loaded")
}

// normalize sorts words into display order and repairs what a consistent
// list never contains: negative or tied positions, blank or duplicate ids.
func (m *Manager) normalize(words []entities.WordEntry) ([]entities.WordEntry, bool) {
	out := make([]entities.WordEntry, len(words))
	copy(out, words)
	entities.SortByPosition(out)

	changed := false
	seen := make(map[string]bool, len(out))
	next := 0
	for i := range out {
		if out[i].ID == "" || seen[out[i].ID] {
			out[i].ID = m.newID()
			changed = true
		}
		seen[out[i].ID] = true

		// Past MaxPosition only contiguous positions are kept, so the next
		// assigned position cannot overflow.
		if out[i].Position < next || (out[i].Position > MaxPosition && out[i].Position != next) {
			out[i].Position = next
			changed = true
		}
		next = out[i].Position + 1
	}

	if changed {
		m.log.Warn().Int("count", len(out)).Msg("normalized stored word list")
	}
	return out, changed
}

func positionsMatch(positions entities.PositionMap, words []entities.WordEntry) bool {
	if len(positions) != len(words) {
		return false
	}
	for _, w := range words {
		if p, ok := positions[w.ID]; !ok || p != w.Position {
			return false
		}
	}
	return true
}

// persist writes both records. Callers hold m.mu.
func (m *Manager) persist() {
	snapshot := m.snapshot()
	m.store.SaveWords(snapshot)
	m.store.SavePositions(entities.PositionsOf(snapshot))
	metrics.SetWordListSize(len(snapshot))
}

func (m *Manager) snapshot() []entities.WordEntry {
	out := make([]entities.WordEntry, len(m.words))
	copy(out, m.words)
	return out
}

func (m *Manager) indexOf(id string) int {
	for i, w := range m.words {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func (m *Manager) nextPosition() int {
	return entities.MaxPosition(m.words) + 1
}

func (m *Manager) validCount(n int) bool {
	return n > 0 && n <= m.maxCount
}

func (m *Manager) newEntry(text string, position int, source entities.WordSource) entities.WordEntry {
	return entities.WordEntry{
		ID:        m.newID(),
		Text:      text,
		Position:  position,
		CreatedAt: entities.FormatCreatedAt(m.now()),
		Source:    source,
	}
}

func (m *Manager) languageOr(language string) string {
	if language == "" {
		return m.language
	}
	return language
}

// generate appends count generated entries starting at the next free
// position. Callers hold m.mu.
func (m *Manager) generate(count, batchSize int, language string) []entities.WordEntry {
	start := len(m.words)
	position := m.nextPosition()

	for remaining := count; remaining > 0; remaining -= batchSize {
		n := batchSize
		if remaining < n {
			n = remaining
		}
		for _, text := range m.source.GenerateBatch(n, language) {
			m.words = append(m.words, m.newEntry(text, position, entities.WordSourceLocal))
			position++
		}
	}

	added := make([]entities.WordEntry, len(m.words)-start)
	copy(added, m.words[start:])
	return added
}

// HasExistingData reports whether a word list is present.
func (m *Manager) HasExistingData() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.words) > 0
}

// Initialize seeds the list with targetCount generated words when no list
// exists. With an existing list nothing is generated and generated is false.
func (m *Manager) Initialize(targetCount int, language string) (words []entities.WordEntry, generated bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.words) > 0 {
		m.log.Info().Int("count", len(m.words)).Msg("existing word list found, skipping generation")
		return m.snapshot(), false, nil
	}
	if !m.validCount(targetCount) {
		err := invalid("initialize", "", ErrInvalidCount)
		metrics.RecordWordOperation("initialize", err)
		return nil, false, err
	}

	language = m.languageOr(language)
	m.generate(targetCount, m.batchSize, language)
	m.persist()

	metrics.RecordWordOperation("initialize", nil)
	m.log.Info().Int("count", targetCount).Str("language", language).Msg("seeded word list")
	return m.snapshot(), true, nil
}

// Seed is Initialize for the setup flow.
func (m *Manager) Seed(targetCount int, language string) ([]entities.WordEntry, bool, error) {
	return m.Initialize(targetCount, language)
}

// AppendMore generates batchSize more words after the current last position.
func (m *Manager) AppendMore(batchSize int, language string) ([]entities.WordEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.validCount(batchSize) {
		err := invalid("append", "", ErrInvalidCount)
		metrics.RecordWordOperation("append", err)
		return nil, err
	}

	language = m.languageOr(language)
	added := m.generate(batchSize, batchSize, language)
	m.persist()

	metrics.RecordWordOperation("append", nil)
	m.log.Debug().Int("added", len(added)).Int("total", len(m.words)).Str("language", language).Msg("appended words")
	return added, nil
}

// AddWord appends a manually entered word.
func (m *Manager) AddWord(text string) (entities.WordEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	text = strings.TrimSpace(text)
	if text == "" {
		err := invalid("add", "", ErrEmptyText)
		metrics.RecordWordOperation("add", err)
		return entities.WordEntry{}, err
	}

	entry := m.newEntry(text, m.nextPosition(), entities.WordSourceManual)
	m.words = append(m.words, entry)
	m.persist()

	metrics.RecordWordOperation("add", nil)
	return entry, nil
}

// UpdateWord replaces the text of an entry, keeping id, position and
// creation time.
func (m *Manager) UpdateWord(id, text string) (entities.WordEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		err := invalid("update", id, ErrWordNotFound)
		metrics.RecordWordOperation("update", err)
		return entities.WordEntry{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		err := invalid("update", id, ErrEmptyText)
		metrics.RecordWordOperation("update", err)
		return entities.WordEntry{}, err
	}

	m.words[i].Text = text
	m.persist()

	metrics.RecordWordOperation("update", nil)
	return m.words[i], nil
}

// DeleteWord removes an entry. Deleting an unknown id is a no-op and reports
// false. Remaining positions are left as they are.
func (m *Manager) DeleteWord(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return false
	}

	m.words = append(m.words[:i], m.words[i+1:]...)
	m.persist()

	metrics.RecordWordOperation("delete", nil)
	return true
}

// Reorder moves an entry to newPosition. Entries at or after newPosition are
// shifted up by one, as far as needed to keep positions unique, so the moved
// entry sorts before whatever previously held newPosition.
func (m *Manager) Reorder(id string, newPosition int) ([]entities.WordEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if newPosition < 0 || newPosition > MaxPosition {
		err := invalid("reorder", id, ErrInvalidPosition)
		metrics.RecordWordOperation("reorder", err)
		return nil, err
	}
	i := m.indexOf(id)
	if i < 0 {
		err := invalid("reorder", id, ErrWordNotFound)
		metrics.RecordWordOperation("reorder", err)
		return nil, err
	}

	moved := m.words[i]
	moved.Position = newPosition
	rest := append(m.words[:i:i], m.words[i+1:]...)

	// rest is in display order with unique positions; cascade the shift.
	next := newPosition + 1
	insertAt := len(rest)
	for j := range rest {
		if rest[j].Position < newPosition {
			continue
		}
		if insertAt == len(rest) {
			insertAt = j
		}
		if rest[j].Position >= next {
			break
		}
		rest[j].Position = next
		next++
	}

	words := make([]entities.WordEntry, 0, len(rest)+1)
	words = append(words, rest[:insertAt]...)
	words = append(words, moved)
	words = append(words, rest[insertAt:]...)
	m.words = words
	m.persist()

	metrics.RecordWordOperation("reorder", nil)
	return m.snapshot(), nil
}

// Search returns entries whose text contains query, ignoring case, in
// display order. An empty query returns the whole list.
func (m *Manager) Search(query string) []entities.WordEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	if query == "" {
		return m.snapshot()
	}

	needle := strings.ToLower(query)
	matches := []entities.WordEntry{}
	for _, w := range m.words {
		if strings.Contains(strings.ToLower(w.Text), needle) {
			matches = append(matches, w)
		}
	}
	return matches
}

// Words returns the list in display order.
func (m *Manager) Words() []entities.WordEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// Page returns a window of the display order and the total count.
func (m *Manager) Page(offset, limit int) ([]entities.WordEntry, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := len(m.words)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []entities.WordEntry{}, total
	}
	end := total
	if limit > 0 && limit < total-offset {
		end = offset + limit
	}

	page := make([]entities.WordEntry, end-offset)
	copy(page, m.words[offset:end])
	return page, total
}

// Get returns the entry with id.
func (m *Manager) Get(id string) (entities.WordEntry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return entities.WordEntry{}, false
	}
	return m.words[i], true
}

// Count returns the number of entries.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.words)
}

// ClearAll empties the list and clears the store.
func (m *Manager) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.words = []entities.WordEntry{}
	m.store.Clear()

	metrics.SetWordListSize(0)
	metrics.RecordWordOperation("clear", nil)
	m.log.Info().Msg("word list cleared")
}
