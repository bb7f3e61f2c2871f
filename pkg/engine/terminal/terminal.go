package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when output is not a terminal or its size is unknown.
const DefaultWidth = 80

// WidthOf returns the width of the terminal behind w, or DefaultWidth when w
// is not a terminal (a pipe, a file, a buffer in tests).
func WidthOf(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// IsTerminal reports whether w writes to an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
