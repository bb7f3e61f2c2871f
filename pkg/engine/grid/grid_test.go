package grid

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestNewGrid_PositionsMatchIndex(t *testing.T) {
	g := NewGrid(4)
	if g.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", g.Size())
	}
	if msg := g.Validate(); msg != "" {
		t.Fatalf("Validate() = %q, want empty", msg)
	}
	g.ForEachCell(func(x, y int, cell *Cell) {
		if cell.Position != (Position{X: x, Y: y}) {
			t.Errorf("cell at (%d,%d) has position %v", x, y, cell.Position)
		}
		if !cell.IsEmpty() || cell.IsPartOfWord || len(cell.WordIndices) != 0 {
			t.Errorf("cell at (%d,%d) is not empty: %+v", x, y, cell)
		}
	})
}

func TestNewGrid_NonPositiveSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0) did not panic")
		}
	}()
	NewGrid(0)
}

func TestGetCell_OutOfBounds(t *testing.T) {
	g := NewGrid(3)
	for _, p := range []Position{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 3, Y: 0}, {X: 0, Y: 3}} {
		if c := g.GetCell(p.X, p.Y); c != nil {
			t.Errorf("GetCell(%d,%d) = %v, want nil", p.X, p.Y, c)
		}
	}
	if c := g.GetCell(2, 1); c == nil || c.Position != (Position{X: 2, Y: 1}) {
		t.Errorf("GetCell(2,1) = %v, want cell at (2,1)", c)
	}
}

func TestFill_OnlyEmptyCells(t *testing.T) {
	g := NewGrid(5)
	g.GetCell(1, 1).Letter = 'Q'
	rng := rand.New(rand.NewPCG(1, 2))

	g.Fill(rng)

	if g.EmptyCount() != 0 {
		t.Fatalf("EmptyCount() = %d after Fill, want 0", g.EmptyCount())
	}
	if got := g.GetCell(1, 1).Letter; got != 'Q' {
		t.Errorf("pre-filled cell letter = %q, want 'Q'", got)
	}
	g.ForEachCell(func(x, y int, cell *Cell) {
		if !strings.ContainsRune(Alphabet, cell.Letter) {
			t.Errorf("cell (%d,%d) letter %q not in A-Z", x, y, cell.Letter)
		}
	})

	before := g.String()
	g.Fill(rng)
	if g.String() != before {
		t.Error("second Fill changed an already filled grid")
	}
}

func TestLetters_EmptyCellsAsDots(t *testing.T) {
	g := NewGrid(2)
	g.GetCell(0, 0).Letter = 'A'
	g.GetCell(1, 1).Letter = 'B'
	want := "A.\n.B"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDirectionVector(t *testing.T) {
	tests := []struct {
		dir       Direction
		backwards bool
		dx, dy    int
	}{
		{Horizontal, false, 1, 0},
		{Horizontal, true, -1, 0},
		{Vertical, false, 0, 1},
		{Vertical, true, 0, -1},
		{Diagonal, false, 1, 1},
		{Diagonal, true, -1, -1},
	}
	for _, tt := range tests {
		dx, dy, err := tt.dir.Vector(tt.backwards)
		if err != nil {
			t.Fatalf("%v.Vector(%v) error: %v", tt.dir, tt.backwards, err)
		}
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Vector(%v) = (%d,%d), want (%d,%d)", tt.dir, tt.backwards, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestDirectionVector_Invalid(t *testing.T) {
	_, _, err := Direction(7).Vector(false)
	if !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("Direction(7).Vector error = %v, want ErrInvalidDirection", err)
	}
	if Direction(-1).IsValid() {
		t.Error("Direction(-1).IsValid() = true, want false")
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range AllDirections() {
		got, err := ParseDirection(strings.ToUpper(d.String()))
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v", d.String(), got, err, d)
		}
	}
	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ParseDirection(sideways) error = %v, want ErrInvalidDirection", err)
	}

	var d Direction
	if err := d.UnmarshalText([]byte("v")); err != nil || d != Vertical {
		t.Errorf("UnmarshalText(v) = %v, %v; want Vertical", d, err)
	}
	if b, err := Diagonal.MarshalText(); err != nil || string(b) != "diagonal" {
		t.Errorf("MarshalText() = %q, %v; want diagonal", b, err)
	}
}
