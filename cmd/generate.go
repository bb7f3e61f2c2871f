package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wordsearch/pkg/engine/terminal"
	"wordsearch/pkg/puzzle"
	"wordsearch/pkg/puzzleset"
	"wordsearch/pkg/render"
)

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <word>...",
		Short: "Generate a single puzzle from the given words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args)
		},
	}
}

func runGenerate(cmd *cobra.Command, opts *rootOptions, words []string) error {
	cfg, err := opts.settings(cmd)
	if err != nil {
		return err
	}

	size := cfg.GridSize
	if !sizeGiven(cmd) {
		minRequired, raised := puzzleset.MinGridSize([]puzzleset.Set{{Words: words}}, cfg.GridSize)
		size = puzzleset.ClampGridSize(raised, minRequired)
	}

	gen := puzzle.New(&puzzle.Options{
		MaxAttempts: cfg.MaxAttempts,
		Seed:        cfg.Seed,
		Logger:      logrus.StandardLogger(),
	})
	res, err := gen.Generate(puzzle.Request{
		GridSize:       size,
		Words:          words,
		Directions:     cfg.Directions,
		AllowBackwards: cfg.AllowBackwards,
	})
	if err != nil {
		return err
	}

	if opts.verify {
		if err := verifyResult("", res.Verify); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	return render.Puzzle(out, "", res, opts.answers, colorOutput(cfg, out), terminal.WidthOf(out))
}
