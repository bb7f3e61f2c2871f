package puzzle

import (
	"github.com/sirupsen/logrus"
)

// DefaultMaxAttempts is the number of candidates tried per word before giving up
const DefaultMaxAttempts = 100

// Options configures puzzle generation behavior.
type Options struct {
	MaxAttempts int                // Candidates tried per word
	Seed        uint64             // Seed for reproducible puzzles (0 = random)
	Logger      logrus.FieldLogger // nil means logrus.StandardLogger()
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{
		MaxAttempts: DefaultMaxAttempts,
		Seed:        0,
	}
}
