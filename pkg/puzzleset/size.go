package puzzleset

import (
	"wordsearch/pkg/puzzle"
)

const (
	SmallestGrid = 10
	LargestGrid  = 25

	// sizeBuffer leaves room around the longest word so it is not pinned to an edge.
	sizeBuffer = 2
)

// LongestWordLength returns the length of the longest usable word across sets.
// Words that would be dropped by normalization are not counted.
func LongestWordLength(sets []Set) int {
	longest := 0
	for _, set := range sets {
		for _, word := range puzzle.NormalizeWords(set.Words) {
			longest = max(longest, len(word))
		}
	}
	return longest
}

// MinGridSize returns the smallest grid that comfortably fits every set and the
// size to use given the currently requested one.
func MinGridSize(sets []Set, current int) (minRequired, size int) {
	minRequired = max(SmallestGrid, LongestWordLength(sets)+sizeBuffer)
	return minRequired, max(current, minRequired)
}

// ClampGridSize keeps size within [minRequired, LargestGrid].
func ClampGridSize(size, minRequired int) int {
	return max(minRequired, min(size, LargestGrid))
}
