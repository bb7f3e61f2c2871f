package puzzle

import (
	"fmt"
	"math/rand/v2"
	"unicode"

	"wordsearch/pkg/engine/grid"
)

// Candidate is a proposed placement for a word. It is geometric only; letters
// already in the grid are checked by CanPlace.
type Candidate struct {
	Direction   grid.Direction
	IsBackwards bool
	StartX      int
	StartY      int
}

// Fits reports whether a word of the given length starting at (x, y) stays inside
// a gridSize x gridSize grid when stepped along the direction.
func Fits(wordLength, gridSize int, dir grid.Direction, x, y int, isBackwards bool) bool {
	if wordLength <= 0 {
		return false
	}
	dx, dy, err := dir.Vector(isBackwards)
	if err != nil {
		return false
	}
	endX := x + (wordLength-1)*dx
	endY := y + (wordLength-1)*dy
	return inBounds(x, gridSize) && inBounds(y, gridSize) &&
		inBounds(endX, gridSize) && inBounds(endY, gridSize)
}

func inBounds(v, gridSize int) bool {
	return v >= 0 && v < gridSize
}

// Sample draws a random candidate for a word of the given length. The direction
// is picked uniformly from dirs, which must be non-empty and valid, and the word
// is backwards on a fair coin flip when allowBackwards is set. The start is
// drawn so that the whole word fits whenever the grid is long enough for it.
func Sample(rng *rand.Rand, gridSize, wordLength int, dirs []grid.Direction, allowBackwards bool) Candidate {
	c := Candidate{
		Direction:   dirs[rng.IntN(len(dirs))],
		IsBackwards: allowBackwards && rng.IntN(2) == 1,
	}

	// Axis that the word moves along: forwards starts in [0, size-len],
	// backwards starts in [len-1, size-1]. Other axes are unconstrained.
	lo, hi := 0, gridSize-wordLength
	if c.IsBackwards {
		lo, hi = wordLength-1, gridSize-1
	}
	free := func() int { return randRange(rng, 0, gridSize-1) }
	along := func() int { return randRange(rng, lo, hi) }

	switch c.Direction {
	case grid.Horizontal:
		c.StartX, c.StartY = along(), free()
	case grid.Vertical:
		c.StartX, c.StartY = free(), along()
	case grid.Diagonal:
		c.StartX, c.StartY = along(), along()
	}
	return c
}

// randRange returns a uniform integer in [lo, hi], or lo when the range is empty
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// CanPlace reports whether word can be written at the candidate without leaving the
// grid or contradicting a letter already there. Letters are laid out in natural
// order; backwards only changes which way increasing index walks.
func CanPlace(g *grid.Grid, word string, c Candidate) bool {
	letters := []rune(word)
	if !Fits(len(letters), g.Size(), c.Direction, c.StartX, c.StartY, c.IsBackwards) {
		return false
	}
	dx, dy, _ := c.Direction.Vector(c.IsBackwards)

	for i, r := range letters {
		cell := g.GetCell(c.StartX+i*dx, c.StartY+i*dy)
		if cell == nil {
			return false
		}
		if !cell.IsEmpty() && cell.Letter != unicode.ToUpper(r) {
			return false
		}
	}
	return true
}

// Place writes word into the grid at the candidate and tags every cell it covers
// with wordIndex. It re-checks CanPlace and returns ErrPlacementConflict when the
// placement is not allowed, leaving the grid untouched.
func Place(g *grid.Grid, word string, c Candidate, wordIndex int) error {
	if !CanPlace(g, word, c) {
		return fmt.Errorf("%w: %q at (%d, %d) %s", ErrPlacementConflict, word, c.StartX, c.StartY, c.Direction)
	}
	dx, dy, _ := c.Direction.Vector(c.IsBackwards)

	for i, r := range []rune(word) {
		cell := g.GetCell(c.StartX+i*dx, c.StartY+i*dy)
		cell.Letter = unicode.ToUpper(r)
		cell.IsPartOfWord = true
		cell.WordIndices = append(cell.WordIndices, wordIndex)
		cell.IsBackwards = c.IsBackwards
		cell.WordDirection = c.Direction
		cell.OriginalIndexInWord = i
	}
	return nil
}
