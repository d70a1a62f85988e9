// Package wordsource produces batches of vocabulary words from static,
// per-language word lists.
package wordsource

import (
	"math/rand"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// DefaultLanguage is used when a requested language has no word list.
const DefaultLanguage = "en"

// Language describes a supported word list.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var registry = map[string][]string{
	"en": englishWords,
	"de": germanWords,
	"cs": czechWords,
}

var languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "de", Name: "Deutsch"},
	{Code: "cs", Name: "Čeština"},
}

// Generator draws words uniformly at random, with replacement.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	log zerolog.Logger
}

// New creates a Generator seeded from the clock.
func New(logger zerolog.Logger) *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()), logger)
}

// NewWithSource creates a Generator drawing from src.
func NewWithSource(src rand.Source, logger zerolog.Logger) *Generator {
	return &Generator{
		rnd: rand.New(src),
		log: logger,
	}
}

// GenerateBatch returns count words for language. Unsupported languages fall
// back to DefaultLanguage. The first word of the batch is capitalised; words
// may repeat within and across batches.
func (g *Generator) GenerateBatch(count int, language string) []string {
	if count <= 0 {
		return []string{}
	}

	list, ok := registry[language]
	if !ok {
		g.log.Warn().Str("language", language).Str("fallback", DefaultLanguage).Msg("unsupported language")
		list = registry[DefaultLanguage]
	}

	g.mu.Lock()
	words := make([]string, count)
	for i := range words {
		words[i] = list[g.rnd.Intn(len(list))]
	}
	g.mu.Unlock()

	words[0] = capitalize(words[0])

	g.log.Debug().Int("count", count).Str("language", language).Int("list_size", len(list)).Msg("generated batch")
	return words
}

// Languages returns the supported languages in a stable order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// IsSupported reports whether language has a word list.
func IsSupported(language string) bool {
	_, ok := registry[language]
	return ok
}

// Words returns a copy of the word list for language, or nil.
func Words(language string) []string {
	list, ok := registry[language]
	if !ok {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
