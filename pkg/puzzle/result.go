package puzzle

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"wordsearch/pkg/engine/grid"
)

// PlacedWord records where a word was written. WordIndex is the word's index in
// Result.PlacedWords and is the value stored in the cells' WordIndices.
type PlacedWord struct {
	Word        string
	StartX      int
	StartY      int
	Direction   grid.Direction
	IsBackwards bool
	WordIndex   int
}

// Cells returns the coordinates covered by the word, in letter order.
// It returns nil for an invalid direction.
func (p PlacedWord) Cells() []grid.Position {
	dx, dy, err := p.Direction.Vector(p.IsBackwards)
	if err != nil {
		return nil
	}
	n := len([]rune(p.Word))
	cells := make([]grid.Position, n)
	for i := range n {
		cells[i] = grid.Position{X: p.StartX + i*dx, Y: p.StartY + i*dy}
	}
	return cells
}

// End returns the coordinate of the word's last letter
func (p PlacedWord) End() grid.Position {
	cells := p.Cells()
	if len(cells) == 0 {
		return grid.Position{X: p.StartX, Y: p.StartY}
	}
	return cells[len(cells)-1]
}

// Result is a finished puzzle: a fully lettered grid and the words hidden in it
type Result struct {
	Grid        *grid.Grid
	PlacedWords []PlacedWord
}

// Words returns the placed words in placement order
func (r *Result) Words() []string {
	words := make([]string, len(r.PlacedWords))
	for i, pw := range r.PlacedWords {
		words[i] = pw.Word
	}
	return words
}

// IsWordCell reports whether (x, y) is covered by any placed word
func (r *Result) IsWordCell(x, y int) bool {
	cell := r.Grid.GetCell(x, y)
	return cell != nil && cell.IsPartOfWord
}

// Verify checks that the result is a consistent puzzle: every cell holds a letter
// A-Z, every placed word lies inside the grid, reads back in natural order along
// its direction, and is tagged on each cell it covers.
func (r *Result) Verify() error {
	if r == nil || r.Grid == nil {
		return fmt.Errorf("puzzle has no grid")
	}
	if msg := r.Grid.Validate(); msg != "" {
		return fmt.Errorf("invalid grid: %s", msg)
	}

	var err error
	r.Grid.ForEachCell(func(x, y int, cell *grid.Cell) {
		if err == nil && (cell.Letter < 'A' || cell.Letter > 'Z') {
			err = fmt.Errorf("cell (%d, %d) has letter %q, want A-Z", x, y, cell.Letter)
		}
	})
	if err != nil {
		return err
	}

	occupied := mapset.New[grid.Position]()
	for i, pw := range r.PlacedWords {
		if pw.WordIndex != i {
			return fmt.Errorf("word %q has index %d at position %d", pw.Word, pw.WordIndex, i)
		}
		letters := []rune(pw.Word)
		cells := pw.Cells()
		if cells == nil {
			return fmt.Errorf("word %q: %w", pw.Word, ErrInvalidDirection)
		}
		for j, pos := range cells {
			cell := r.Grid.GetCell(pos.X, pos.Y)
			if cell == nil {
				return fmt.Errorf("word %q leaves the grid at (%d, %d)", pw.Word, pos.X, pos.Y)
			}
			if cell.Letter != letters[j] {
				return fmt.Errorf("word %q reads %q at (%d, %d), want %q", pw.Word, cell.Letter, pos.X, pos.Y, letters[j])
			}
			if !cell.IsPartOfWord || !cell.HasWord(i) {
				return fmt.Errorf("cell (%d, %d) is not tagged with word %q", pos.X, pos.Y, pw.Word)
			}
			occupied.Put(pos)
		}
	}

	tagged := 0
	r.Grid.ForEachCell(func(x, y int, cell *grid.Cell) {
		if cell.IsPartOfWord {
			tagged++
		}
	})
	if tagged != occupied.Size() {
		return fmt.Errorf("%d cells are tagged as word cells, but words cover %d", tagged, occupied.Size())
	}
	return nil
}
