// Package puzzle places words into a word-search grid.
//
// Words are normalized, sorted longest first and placed one at a time by
// sampling random candidates until one fits without conflicting letters.
// A word that cannot be placed within the attempt budget fails the whole
// generation; earlier words are never moved to make room.
package puzzle

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"wordsearch/pkg/engine/grid"
)

// Request describes one puzzle to generate
type Request struct {
	GridSize       int
	Words          []string // raw, normalized by Generate
	Directions     []grid.Direction
	AllowBackwards bool
}

// Generator creates word-search puzzles. A Generator owns its random source and
// must not be shared between goroutines; create one per concurrent caller.
type Generator struct {
	options *Options
	rng     *rand.Rand
	log     logrus.FieldLogger
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return NewWithRand(rand.New(rand.NewPCG(seed, seed>>1|1)), options)
}

// NewWithRand creates a generator drawing from the given random source.
func NewWithRand(rng *rand.Rand, options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}
	opts := *options
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}

	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Generator{
		options: &opts,
		rng:     rng,
		log:     log,
	}
}

// Generate builds a puzzle for the request.
// On any error no result is returned; a partially filled grid is discarded.
func (g *Generator) Generate(req Request) (*Result, error) {
	if req.GridSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGridSize, req.GridSize)
	}

	dirs, err := directionSet(req.Directions)
	if err != nil {
		return nil, err
	}

	words := NormalizeWords(req.Words)
	if len(words) == 0 {
		return nil, ErrNoValidWords
	}
	words = OrderForPlacement(words)

	board := grid.NewGrid(req.GridSize)
	placed := make([]PlacedWord, 0, len(words))

	for _, word := range words {
		pw, err := g.placeWord(board, word, len(placed), dirs, req.AllowBackwards)
		if err != nil {
			g.log.WithFields(logrus.Fields{
				"word":      word,
				"grid_size": req.GridSize,
				"placed":    len(placed),
			}).Warn("word placement failed")
			return nil, err
		}
		placed = append(placed, pw)
	}

	board.Fill(g.rng)

	return &Result{Grid: board, PlacedWords: placed}, nil
}

// placeWord runs the retry loop for a single word.
func (g *Generator) placeWord(board *grid.Grid, word string, wordIndex int, dirs []grid.Direction, allowBackwards bool) (PlacedWord, error) {
	for attempt := 1; attempt <= g.options.MaxAttempts; attempt++ {
		c := Sample(g.rng, board.Size(), len(word), dirs, allowBackwards)
		if !CanPlace(board, word, c) {
			continue
		}

		if err := Place(board, word, c, wordIndex); err != nil {
			return PlacedWord{}, err
		}

		g.log.WithFields(logrus.Fields{
			"word":      word,
			"attempts":  attempt,
			"direction": c.Direction,
			"backwards": c.IsBackwards,
			"x":         c.StartX,
			"y":         c.StartY,
		}).Debug("word placed")

		return PlacedWord{
			Word:        word,
			StartX:      c.StartX,
			StartY:      c.StartY,
			Direction:   c.Direction,
			IsBackwards: c.IsBackwards,
			WordIndex:   wordIndex,
		}, nil
	}

	return PlacedWord{}, &WordPlacementFailedError{Word: word, Attempts: g.options.MaxAttempts}
}

// directionSet collapses the requested directions into a sorted list of distinct
// valid directions, so that seeded generators sample reproducibly.
func directionSet(requested []grid.Direction) ([]grid.Direction, error) {
	set := mapset.New[grid.Direction]()
	for _, d := range requested {
		if !d.IsValid() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
		}
		set.Put(d)
	}
	if set.Size() == 0 {
		return nil, ErrNoDirections
	}

	dirs := make([]grid.Direction, 0, set.Size())
	set.Each(func(d grid.Direction) {
		dirs = append(dirs, d)
	})
	slices.Sort(dirs)
	return dirs, nil
}

// Generate is a convenience function to build a single puzzle with the given random source.
func Generate(req Request, rng *rand.Rand) (*Result, error) {
	return NewWithRand(rng, nil).Generate(req)
}
