// Package cmd implements the wordsearch command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wordsearch/pkg/config"
	"wordsearch/pkg/engine/grid"
	"wordsearch/pkg/engine/terminal"
	"wordsearch/pkg/i18n"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	noColor    bool

	size       int
	directions []string
	backwards  bool
	seed       uint64
	attempts   int
	answers    bool
	verify     bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "wordsearch",
		Short: "Generate word-search puzzles",
		Long: `Generate word-search puzzles from a list of words.

Examples:
  wordsearch generate gopher channel slice map
  wordsearch generate --size 12 --directions h,v --answers cat dog emu
  wordsearch batch --workers 8 --retries 3 words.txt`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")
	pf.IntVarP(&opts.size, "size", "s", 0, "Grid size; by default the configured size raised to fit the longest word")
	pf.StringSliceVarP(&opts.directions, "directions", "d", nil, "Placement directions: horizontal, vertical, diagonal (or h, v, d)")
	pf.BoolVar(&opts.backwards, "backwards", true, "Allow words to read backwards")
	pf.Uint64Var(&opts.seed, "seed", 0, "Random seed; 0 picks one from the clock")
	pf.IntVar(&opts.attempts, "attempts", 0, "Placement attempts per word")
	pf.BoolVarP(&opts.answers, "answers", "a", false, "Highlight the words and print the answer key")
	pf.BoolVar(&opts.verify, "verify", false, "Check every generated puzzle before printing it")

	root.AddCommand(newGenerateCmd(opts), newBatchCmd(opts))
	return root
}

// Execute runs the command line.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// settings loads the config file and applies any flags set on the command line.
// It also configures logging and translations for the run.
func (o *rootOptions) settings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.GridSize = o.size
	}
	if flags.Changed("directions") {
		dirs := make([]grid.Direction, 0, len(o.directions))
		for _, name := range o.directions {
			d, err := grid.ParseDirection(name)
			if err != nil {
				return nil, err
			}
			dirs = append(dirs, d)
		}
		cfg.Directions = dirs
	}
	if flags.Changed("backwards") {
		cfg.AllowBackwards = o.backwards
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("attempts") {
		cfg.MaxAttempts = o.attempts
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if o.noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetLevel(cfg.Level())

	if err := i18n.Init(i18n.ResolveDir(cfg.LocalesDir), cfg.Locale); err != nil {
		logrus.WithError(err).Debug("translations not loaded")
	} else {
		logrus.WithField("language", i18n.Language()).Debug("translations loaded")
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	logrus.WithField("seed", cfg.Seed).Debug("using seed")

	return cfg, nil
}

// sizeGiven reports whether the grid size was set explicitly with --size.
func sizeGiven(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("size")
}

// colorOutput reports whether styled output should be written to w. Files and
// pipes never get escape codes.
func colorOutput(cfg *config.Config, w io.Writer) bool {
	return cfg.Color && terminal.IsTerminal(w)
}

func verifyResult(title string, verify func() error) error {
	if err := verify(); err != nil {
		return fmt.Errorf("puzzle %q failed verification: %w", title, err)
	}
	return nil
}
