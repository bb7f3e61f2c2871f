// Package grid provides the square letter grid that word-search puzzles are built on.
package grid

// Position is a grid coordinate. (0,0) is the top-left cell, x grows rightward
// and y grows downward.
type Position struct {
	X int
	Y int
}

// Cell represents a single letter cell in the grid
type Cell struct {
	// Letter is the upper-case letter in the cell, or 0 while empty
	Letter rune

	// IsPartOfWord is set once any placed word writes through the cell
	IsPartOfWord bool

	Position Position

	// WordIndices lists the placed words occupying this cell, in the order
	// they were written. Values index into the placed word list.
	WordIndices []int

	// Orientation of the last word written through this cell, kept so that
	// renderers can reconstruct per-letter direction.
	IsBackwards         bool
	WordDirection       Direction
	OriginalIndexInWord int
}

// NewCell creates a new empty cell at the given position
func NewCell(x, y int) *Cell {
	return &Cell{
		Position:    Position{X: x, Y: y},
		WordIndices: make([]int, 0),
	}
}

// IsEmpty returns true if no letter has been written into the cell
func (c *Cell) IsEmpty() bool {
	return c.Letter == 0
}

// HasWord returns true if the placed word with the given index occupies the cell
func (c *Cell) HasWord(wordIndex int) bool {
	for _, idx := range c.WordIndices {
		if idx == wordIndex {
			return true
		}
	}
	return false
}
