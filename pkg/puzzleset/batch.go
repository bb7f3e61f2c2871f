package puzzleset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"wordsearch/pkg/engine/grid"
	"wordsearch/pkg/puzzle"
)

const tracerName = "wordsearch/puzzleset"

// BatchOptions configures GenerateAll. Every set is generated with the same
// grid size and placement rules.
type BatchOptions struct {
	GridSize       int
	Directions     []grid.Direction
	AllowBackwards bool
	MaxAttempts    int
	Seed           uint64 // set i uses Seed+i; 0 seeds from the clock
	Workers        int
	Retries        int // whole-puzzle retries after a word cannot be placed
	Logger         logrus.FieldLogger
}

// Puzzle is one generated puzzle of a batch.
type Puzzle struct {
	ID          uuid.UUID
	Title       string
	Seed        uint64 // seed of the successful generation
	Generations int
	Result      *puzzle.Result
}

// GenerateAll generates one puzzle per set, running up to Workers generations
// at once. Puzzles are returned in the order of sets. The first set that fails
// cancels the rest and its error is returned.
func GenerateAll(ctx context.Context, sets []Set, opts BatchOptions) ([]Puzzle, error) {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	base := opts.Seed
	if base == 0 {
		base = uint64(time.Now().UnixNano())
	}

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "GenerateAll", trace.WithAttributes(
		attribute.Int("puzzles", len(sets)),
		attribute.Int("grid_size", opts.GridSize),
		attribute.Int("workers", opts.Workers),
	))
	defer span.End()

	puzzles := make([]Puzzle, len(sets))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Workers)

	for i, set := range sets {
		eg.Go(func() error {
			p, err := generateSet(ctx, tracer, set, i, len(sets), base, opts)
			if err != nil {
				return fmt.Errorf("puzzle %d %q: %w", i+1, set.Title, err)
			}
			puzzles[i] = p
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return puzzles, nil
}

// generateSet runs the generator for one set, retrying with a new seed when a
// word cannot be placed. Retry seeds step by the batch size so they never repeat
// another set's seed.
func generateSet(ctx context.Context, tracer trace.Tracer, set Set, index, total int, base uint64, opts BatchOptions) (Puzzle, error) {
	id := uuid.New()
	log := opts.Logger.WithFields(logrus.Fields{
		"puzzle": id.String(),
		"title":  set.Title,
	})

	req := puzzle.Request{
		GridSize:       opts.GridSize,
		Words:          set.Words,
		Directions:     opts.Directions,
		AllowBackwards: opts.AllowBackwards,
	}

	var lastErr error
	for generation := 0; generation <= opts.Retries; generation++ {
		if err := ctx.Err(); err != nil {
			return Puzzle{}, err
		}

		seed := base + uint64(index) + uint64(generation)*uint64(total)
		res, err := generateTraced(ctx, tracer, id, set.Title, seed, req, opts.MaxAttempts, log)
		if err == nil {
			log.WithFields(logrus.Fields{
				"seed":        seed,
				"generations": generation + 1,
			}).Debug("puzzle generated")

			return Puzzle{
				ID:          id,
				Title:       set.Title,
				Seed:        seed,
				Generations: generation + 1,
				Result:      res,
			}, nil
		}
		if !errors.Is(err, puzzle.ErrWordPlacementFailed) {
			return Puzzle{}, err
		}

		lastErr = err
		if generation < opts.Retries {
			log.WithError(err).WithField("seed", seed).Info("retrying puzzle with a new seed")
		}
	}

	return Puzzle{}, lastErr
}

func generateTraced(ctx context.Context, tracer trace.Tracer, id uuid.UUID, title string, seed uint64, req puzzle.Request, maxAttempts int, log logrus.FieldLogger) (*puzzle.Result, error) {
	_, span := tracer.Start(ctx, "GeneratePuzzle", trace.WithAttributes(
		attribute.String("puzzle.id", id.String()),
		attribute.String("puzzle.title", title),
		attribute.Int64("puzzle.seed", int64(seed)),
		attribute.Int("puzzle.words", len(req.Words)),
	))
	defer span.End()

	gen := puzzle.New(&puzzle.Options{
		MaxAttempts: maxAttempts,
		Seed:        seed,
		Logger:      log,
	})
	res, err := gen.Generate(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("puzzle.placed", len(res.PlacedWords)))
	return res, nil
}
