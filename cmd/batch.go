package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wordsearch/pkg/engine/terminal"
	"wordsearch/pkg/puzzleset"
	"wordsearch/pkg/render"
)

type batchOptions struct {
	workers int
	retries int
}

func newBatchCmd(opts *rootOptions) *cobra.Command {
	batch := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Generate every puzzle in a word-list file",
		Long: `Generate every puzzle in a word-list file. Use - to read from stdin.

A line starting with "Title:" begins a puzzle; the lines after it hold
comma-separated words:

  Title: Fruit
  apple, banana, cherry
  Title: Animals
  cat, dog, emu`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts, batch, args[0])
		},
	}

	cmd.Flags().IntVarP(&batch.workers, "workers", "w", 0, "Puzzles generated at once (default from config)")
	cmd.Flags().IntVar(&batch.retries, "retries", 0, "Retries with a new seed when a word cannot be placed (default from config)")

	return cmd
}

func runBatch(cmd *cobra.Command, opts *rootOptions, batch *batchOptions, path string) error {
	cfg, err := opts.settings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = batch.workers
	}
	if cmd.Flags().Changed("retries") {
		cfg.Retries = batch.retries
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	sets, err := readSets(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	if len(sets) == 0 {
		return fmt.Errorf("no puzzles in %s", path)
	}

	size := cfg.GridSize
	if !sizeGiven(cmd) {
		minRequired, raised := puzzleset.MinGridSize(sets, cfg.GridSize)
		size = puzzleset.ClampGridSize(raised, minRequired)
	}

	logrus.WithFields(logrus.Fields{
		"puzzles":   len(sets),
		"grid_size": size,
		"workers":   cfg.Workers,
	}).Info("generating puzzles")

	puzzles, err := puzzleset.GenerateAll(cmd.Context(), sets, puzzleset.BatchOptions{
		GridSize:       size,
		Directions:     cfg.Directions,
		AllowBackwards: cfg.AllowBackwards,
		MaxAttempts:    cfg.MaxAttempts,
		Seed:           cfg.Seed,
		Workers:        cfg.Workers,
		Retries:        cfg.Retries,
		Logger:         logrus.StandardLogger(),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	width := terminal.WidthOf(out)
	useColor := colorOutput(cfg, out)
	for i, p := range puzzles {
		title := p.Title
		if title == "" {
			title = gotext.Get("Puzzle %d", i+1)
		}
		if opts.verify {
			if err := verifyResult(title, p.Result.Verify); err != nil {
				return err
			}
		}
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if err := render.Puzzle(out, title, p.Result, opts.answers, useColor, width); err != nil {
			return err
		}
	}
	return nil
}

func readSets(stdin io.Reader, path string) ([]puzzleset.Set, error) {
	if path == "-" {
		return puzzleset.Parse(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return puzzleset.Parse(f)
}
