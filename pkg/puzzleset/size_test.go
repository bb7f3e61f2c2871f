package puzzleset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLongestWordLength(t *testing.T) {
	sets := []Set{
		{Words: []string{"cat", "elephant"}},
		{Words: []string{"giraffe", "not-a-word-at-all", "abcdefghijklmnopq"}},
	}
	assert.Equal(t, 8, LongestWordLength(sets))
	assert.Equal(t, 0, LongestWordLength(nil))
}

func TestMinGridSize(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		current  int
		wantMin  int
		wantSize int
	}{
		{"short words use the floor", []string{"cat"}, 5, 10, 10},
		{"current above minimum kept", []string{"cat"}, 15, 10, 15},
		{"long word raises minimum", []string{"hippopotamus"}, 12, 14, 14},
		{"longest valid word", []string{"abcdefghijklmno"}, 0, 17, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minRequired, size := MinGridSize([]Set{{Words: tt.words}}, tt.current)
			assert.Equal(t, tt.wantMin, minRequired)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestClampGridSize(t *testing.T) {
	assert.Equal(t, 25, ClampGridSize(40, 10))
	assert.Equal(t, 12, ClampGridSize(8, 12))
	assert.Equal(t, 18, ClampGridSize(18, 10))
}
