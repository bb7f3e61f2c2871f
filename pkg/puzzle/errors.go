package puzzle

import (
	"errors"
	"fmt"

	"wordsearch/pkg/engine/grid"
)

var (
	ErrNoValidWords        = errors.New("no valid words provided for puzzle generation")
	ErrInvalidGridSize     = errors.New("grid size must be at least 1")
	ErrNoDirections        = errors.New("at least one direction is required")
	ErrWordPlacementFailed = errors.New("word placement failed")
	ErrPlacementConflict   = errors.New("placement conflicts with letters already in the grid")

	// ErrInvalidDirection is the grid package's error, re-exported for callers of Generate.
	ErrInvalidDirection = grid.ErrInvalidDirection
)

// WordPlacementFailedError reports a word that could not be placed within the
// attempt budget. It matches ErrWordPlacementFailed with errors.Is.
type WordPlacementFailedError struct {
	Word     string
	Attempts int
}

func (e *WordPlacementFailedError) Error() string {
	return fmt.Sprintf("could not place word %q after %d attempts; try increasing grid size or reducing word count", e.Word, e.Attempts)
}

func (e *WordPlacementFailedError) Unwrap() error {
	return ErrWordPlacementFailed
}
