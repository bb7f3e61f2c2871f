// Package render prints puzzles to a terminal or any other writer.
package render

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"wordsearch/pkg/engine/grid"
	"wordsearch/pkg/puzzle"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleWord
	StyleSubtle
)

var (
	ColorTitle  = color.Style{color.FgCyan, color.OpBold}
	ColorWord   = color.Style{color.FgGreen, color.OpBold}
	ColorSubtle = color.Style{color.FgGray}
)

// dynamicGet translates direction names, which are not literal message ids.
var dynamicGet = gotext.Get

// Options controls how a puzzle is drawn.
type Options struct {
	Highlight bool // mark the letters of placed words
	Color     bool // ANSI colour; without it highlighted letters are lower-cased
}

// StyleText applies a style to text. With colour off the text is returned unchanged.
func StyleText(text string, style TextStyle, useColor bool) string {
	if !useColor {
		return text
	}
	switch style {
	case StyleTitle:
		return ColorTitle.Sprint(text)
	case StyleWord:
		return ColorWord.Sprint(text)
	case StyleSubtle:
		return ColorSubtle.Sprint(text)
	default:
		return text
	}
}

// Grid writes the letter grid, one row per line with letters separated by spaces.
func Grid(w io.Writer, res *puzzle.Result, opts Options) error {
	size := res.Grid.Size()
	var sb strings.Builder
	for y := 0; y < size; y++ {
		sb.Reset()
		for x := 0; x < size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cellText(res.Grid.GetCell(x, y), opts))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

func cellText(cell *grid.Cell, opts Options) string {
	if cell.IsEmpty() {
		return "."
	}
	letter := string(cell.Letter)
	if !opts.Highlight || !cell.IsPartOfWord {
		return letter
	}
	if opts.Color {
		return ColorWord.Sprint(letter)
	}
	return string(unicode.ToLower(cell.Letter))
}

// WordBank writes the words to find in alphabetical order, laid out in as many
// columns as fit in width. Columns are filled top to bottom.
func WordBank(w io.Writer, res *puzzle.Result, width int, useColor bool) error {
	words := res.Words()
	slices.Sort(words)

	if _, err := fmt.Fprintln(w, StyleText(gotext.Get("Words to find"), StyleTitle, useColor)); err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}

	for _, line := range columns(words, width) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// columns lays words out column-major in rows no wider than width where possible.
func columns(words []string, width int) []string {
	longest := 0
	for _, word := range words {
		longest = max(longest, len(word))
	}
	colWidth := longest + 2
	cols := max(1, (width+2)/colWidth)
	cols = min(cols, len(words))
	rows := (len(words) + cols - 1) / cols

	lines := make([]string, rows)
	for r := range rows {
		var sb strings.Builder
		for c := range cols {
			i := c*rows + r
			if i >= len(words) {
				break
			}
			if c > 0 {
				sb.WriteString(strings.Repeat(" ", colWidth-len(words[i-rows])))
			}
			sb.WriteString(words[i])
		}
		lines[r] = sb.String()
	}
	return lines
}

// AnswerKey lists every placed word with its start and end cell and orientation.
func AnswerKey(w io.Writer, res *puzzle.Result, useColor bool) error {
	if _, err := fmt.Fprintln(w, StyleText(gotext.Get("Answer key"), StyleTitle, useColor)); err != nil {
		return err
	}

	longest := 0
	for _, pw := range res.PlacedWords {
		longest = max(longest, len(pw.Word))
	}

	for _, pw := range res.PlacedWords {
		orientation := gotext.Get("forwards")
		if pw.IsBackwards {
			orientation = gotext.Get("backwards")
		}
		end := pw.End()
		detail := fmt.Sprintf("(%d, %d) -> (%d, %d)  %s, %s",
			pw.StartX, pw.StartY, end.X, end.Y, dynamicGet(pw.Direction.String()), orientation)
		word := fmt.Sprintf("%-*s", longest, pw.Word)
		_, err := fmt.Fprintf(w, "%s  %s\n", StyleText(word, StyleWord, useColor), StyleText(detail, StyleSubtle, useColor))
		if err != nil {
			return err
		}
	}
	return nil
}

// Puzzle writes a titled puzzle: the grid, then the word bank, then the answer
// key when answers is set. Word letters are highlighted only alongside the answers.
func Puzzle(w io.Writer, title string, res *puzzle.Result, answers bool, useColor bool, width int) error {
	opts := Options{Highlight: answers, Color: useColor}
	if title != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", StyleText(title, StyleTitle, opts.Color)); err != nil {
			return err
		}
	}

	if err := Grid(w, res, opts); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := WordBank(w, res, width, opts.Color); err != nil {
		return err
	}
	if !answers {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return AnswerKey(w, res, opts.Color)
}
