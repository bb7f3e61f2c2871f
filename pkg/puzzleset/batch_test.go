package puzzleset

import (
	"context"
	"io"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordsearch/pkg/engine/grid"
	"wordsearch/pkg/puzzle"
)

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testOptions() BatchOptions {
	return BatchOptions{
		GridSize:       12,
		Directions:     grid.AllDirections(),
		AllowBackwards: true,
		MaxAttempts:    puzzle.DefaultMaxAttempts,
		Seed:           7,
		Workers:        3,
		Retries:        5,
		Logger:         quietLogger(),
	}
}

func testSets() []Set {
	return []Set{
		{Title: "Fruit", Words: []string{"apple", "banana", "cherry"}},
		{Title: "Animals", Words: []string{"cat", "dog", "emu", "zebra"}},
		{Title: "Colours", Words: []string{"red", "green", "blue"}},
		{Title: "Planets", Words: []string{"mars", "venus", "earth", "saturn"}},
	}
}

func TestGenerateAll_KeepsOrder(t *testing.T) {
	sets := testSets()
	puzzles, err := GenerateAll(context.Background(), sets, testOptions())
	require.NoError(t, err)
	require.Len(t, puzzles, len(sets))

	ids := map[uuid.UUID]bool{}
	for i, p := range puzzles {
		assert.Equal(t, sets[i].Title, p.Title)
		assert.ElementsMatch(t, puzzle.NormalizeWords(sets[i].Words), p.Result.Words())
		assert.Equal(t, 12, p.Result.Grid.Size())
		assert.NoError(t, p.Result.Verify())
		assert.GreaterOrEqual(t, p.Generations, 1)
		assert.NotEqual(t, uuid.Nil, p.ID)
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true
	}
}

func TestGenerateAll_SeededIsReproducible(t *testing.T) {
	opts := testOptions()
	a, err := GenerateAll(context.Background(), testSets(), opts)
	require.NoError(t, err)
	b, err := GenerateAll(context.Background(), testSets(), opts)
	require.NoError(t, err)

	for i := range a {
		assert.Equal(t, a[i].Seed, b[i].Seed)
		assert.Equal(t, a[i].Result.Grid.String(), b[i].Result.Grid.String())
		assert.Equal(t, a[i].Result.PlacedWords, b[i].Result.PlacedWords)
	}
}

func TestGenerateAll_PerSetSeeds(t *testing.T) {
	opts := testOptions()
	opts.Retries = 0
	opts.GridSize = 20

	puzzles, err := GenerateAll(context.Background(), testSets(), opts)
	require.NoError(t, err)
	for i, p := range puzzles {
		assert.Equal(t, opts.Seed+uint64(i), p.Seed)
		assert.Equal(t, 1, p.Generations)
	}
}

func TestGenerateAll_PlacementFailure(t *testing.T) {
	opts := testOptions()
	opts.GridSize = 4
	opts.Retries = 2

	sets := []Set{{Title: "Too long", Words: []string{"elephant"}}}
	_, err := GenerateAll(context.Background(), sets, opts)

	require.Error(t, err)
	assert.ErrorIs(t, err, puzzle.ErrWordPlacementFailed)
	assert.Contains(t, err.Error(), `"Too long"`)
}

func TestGenerateAll_NoValidWordsIsNotRetried(t *testing.T) {
	sets := []Set{{Title: "Digits", Words: []string{"123"}}}
	_, err := GenerateAll(context.Background(), sets, testOptions())
	assert.ErrorIs(t, err, puzzle.ErrNoValidWords)
}

func TestGenerateAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateAll(ctx, testSets(), testOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateAll_Empty(t *testing.T) {
	puzzles, err := GenerateAll(context.Background(), nil, testOptions())
	require.NoError(t, err)
	assert.Empty(t, puzzles)
}

func TestGenerateAll_RetriesWithSteppedSeed(t *testing.T) {
	words := []string{"ELEPHANT", "AARDVARK", "HEDGEHOG", "KANGAROO", "SQUIRREL", "ANTELOPE"}
	sets := []Set{
		{Title: "First", Words: words},
		{Title: "Second", Words: slices.Clone(words)},
	}

	retried := false
	for base := uint64(1); base <= 20; base++ {
		opts := testOptions()
		opts.GridSize = 8
		opts.Retries = 200
		opts.Workers = 2
		opts.Seed = base

		puzzles, err := GenerateAll(context.Background(), sets, opts)
		require.NoError(t, err, "seed %d", base)

		for i, p := range puzzles {
			want := base + uint64(i) + uint64(p.Generations-1)*uint64(len(sets))
			assert.Equal(t, want, p.Seed, "seed %d, set %d, generations %d", base, i, p.Generations)
			assert.NoError(t, p.Result.Verify())
			retried = retried || p.Generations > 1
		}
	}
	assert.True(t, retried, "no dense set needed a second generation")
}
