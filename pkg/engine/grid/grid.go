package grid

import (
	"math/rand/v2"
	"strings"
)

// Alphabet is the set of letters used both for words and for filler
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Grid is a square matrix of letter cells with encapsulated cell storage.
// A grid belongs to a single generation call and is not safe for concurrent mutation.
type Grid struct {
	rows [][]*Cell
	size int
}

// NewGrid creates a new empty grid of size x size cells
func NewGrid(size int) *Grid {
	g := &Grid{}
	g.Build(size)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(size int) {
	if size <= 0 {
		panic("Grid size must be positive")
	}

	g.size = size
	g.rows = make([][]*Cell, size)

	for y := 0; y < size; y++ {
		g.rows[y] = make([]*Cell, size)
		for x := 0; x < size; x++ {
			g.rows[y][x] = NewCell(x, y)
		}
	}
}

// Size returns the number of rows (and columns) in the grid
func (g *Grid) Size() int {
	return g.size
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(x, y int) *Cell {
	if !g.IsValidPosition(x, y) {
		return nil
	}
	return g.rows[y][x]
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(x, y int, cell *Cell)) {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			fn(x, y, g.rows[y][x])
		}
	}
}

// Fill assigns a uniformly random letter to every cell that is still empty.
// Cells that already hold a letter are left untouched.
func (g *Grid) Fill(rng *rand.Rand) {
	g.ForEachCell(func(x, y int, cell *Cell) {
		if cell.IsEmpty() {
			cell.Letter = rune(Alphabet[rng.IntN(len(Alphabet))])
		}
	})
}

// EmptyCount returns the number of cells without a letter
func (g *Grid) EmptyCount() int {
	n := 0
	g.ForEachCell(func(x, y int, cell *Cell) {
		if cell.IsEmpty() {
			n++
		}
	})
	return n
}

// Letters returns the grid contents as rows of strings. Empty cells are '.'.
func (g *Grid) Letters() []string {
	lines := make([]string, g.size)
	for y, row := range g.rows {
		var sb strings.Builder
		sb.Grow(g.size)
		for _, cell := range row {
			if cell.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(cell.Letter)
			}
		}
		lines[y] = sb.String()
	}
	return lines
}

// String returns the grid as newline separated rows
func (g *Grid) String() string {
	return strings.Join(g.Letters(), "\n")
}

// Validate checks the grid for structural issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.size <= 0 || len(g.rows) != g.size {
		return "Grid has invalid dimensions"
	}

	for y, row := range g.rows {
		if len(row) != g.size {
			return "Grid row has invalid length"
		}
		for x, cell := range row {
			if cell == nil {
				return "Grid has a nil cell"
			}
			if cell.Position.X != x || cell.Position.Y != y {
				return "Cell position does not match its index"
			}
		}
	}

	return ""
}
