package entities

import (
	"sort"
	"time"
)

type WordSource string

const (
	WordSourceLocal  WordSource = "local"  // Generated from the static word lists
	WordSourceManual WordSource = "manual" // Added by the user
)

// CreatedAtLayout is the ISO-8601 layout used for WordEntry.CreatedAt.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// WordEntry is a single word of the personal dictionary.
// Field names are part of the persisted JSON layout.
type WordEntry struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Position  int        `json:"position"`
	CreatedAt string     `json:"createdAt"`
	Source    WordSource `json:"source"`
}

// FormatCreatedAt renders t the way CreatedAt is stored.
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(CreatedAtLayout)
}

// PositionMap maps entry ids to positions. It is always derived from a word
// list and persisted next to it.
type PositionMap map[string]int

// PositionsOf builds the position map for words.
func PositionsOf(words []WordEntry) PositionMap {
	positions := make(PositionMap, len(words))
	for _, w := range words {
		positions[w.ID] = w.Position
	}
	return positions
}

// SortByPosition sorts words into display order. Ties keep their relative order.
func SortByPosition(words []WordEntry) {
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Position < words[j].Position
	})
}

// MaxPosition returns the highest position in words, or -1 for an empty list.
func MaxPosition(words []WordEntry) int {
	highest := -1
	for _, w := range words {
		if w.Position > highest {
			highest = w.Position
		}
	}
	return highest
}
