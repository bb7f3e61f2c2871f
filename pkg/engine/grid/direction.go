package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned when a value outside the Direction enum is used.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction represents the axis a word runs along
type Direction int

// Direction constants
const (
	Horizontal Direction = iota
	Vertical
	Diagonal // down-right when forwards
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Horizontal, Vertical, Diagonal}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	default:
		return "unknown"
	}
}

// IsValid returns true if the direction is one of the known directions
func (d Direction) IsValid() bool {
	return d >= Horizontal && d <= Diagonal
}

// Vector returns the x and y step for this direction.
// Backwards negates every component the direction moves along.
func (d Direction) Vector(isBackwards bool) (dx, dy int, err error) {
	step := 1
	if isBackwards {
		step = -1
	}
	switch d {
	case Horizontal:
		return step, 0, nil
	case Vertical:
		return 0, step, nil
	case Diagonal:
		return step, step, nil
	default:
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
}

// ParseDirection converts a name such as "vertical" (case-insensitive) into a Direction
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	case "diagonal", "d":
		return Diagonal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
