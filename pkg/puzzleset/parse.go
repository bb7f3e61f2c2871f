// Package puzzleset reads word-list files holding several puzzles and generates
// them as a batch.
package puzzleset

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const titlePrefix = "Title:"

// Set is one titled word list.
type Set struct {
	Title string
	Words []string
}

// Parse reads a word-list file. A line starting with "Title:" opens a new set;
// every other non-blank line adds its comma-separated words to the current set.
// Words before the first title go into a set with an empty title.
// Words are trimmed but otherwise left as written.
func Parse(r io.Reader) ([]Set, error) {
	var (
		sets    []Set
		current *Set
	)

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if title, ok := strings.CutPrefix(line, titlePrefix); ok {
			sets = append(sets, Set{Title: strings.TrimSpace(title)})
			current = &sets[len(sets)-1]
			continue
		}

		if current == nil {
			sets = append(sets, Set{})
			current = &sets[len(sets)-1]
		}
		for _, word := range strings.Split(line, ",") {
			if word = strings.TrimSpace(word); word != "" {
				current.Words = append(current.Words, word)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	return sets, nil
}
