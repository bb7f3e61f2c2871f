package puzzle

import (
	"regexp"
	"slices"
	"strings"
)

// Word length limits applied by NormalizeWords
const (
	MinWordLength = 2
	MaxWordLength = 15
)

var wordPattern = regexp.MustCompile(`^[A-Z]+$`)

// NormalizeWords trims and upper-cases every word and drops the ones that are not
// made of A-Z only or whose length falls outside [MinWordLength, MaxWordLength].
// Duplicates are kept; each copy is placed independently.
func NormalizeWords(raw []string) []string {
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.ToUpper(strings.TrimSpace(w))
		if !wordPattern.MatchString(w) {
			continue
		}
		if len(w) < MinWordLength || len(w) > MaxWordLength {
			continue
		}
		words = append(words, w)
	}
	return words
}

// OrderForPlacement returns a copy of words sorted longest first.
// Words of equal length keep their input order.
func OrderForPlacement(words []string) []string {
	ordered := slices.Clone(words)
	slices.SortStableFunc(ordered, func(a, b string) int {
		return len(b) - len(a)
	})
	return ordered
}
