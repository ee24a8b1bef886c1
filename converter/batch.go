package converter

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome of one input of ConvertBatch.
type BatchResult[T comparable] struct {
	// Index is the position of the input in the batch
	Index int
	// Postfix is the converted output, nil when Err is set
	Postfix []T
	// MaxDepth is the deepest parenthesis nesting of the input
	MaxDepth int
	// Err is the structural or resource limit error for this input
	Err error
}

// ConvertBatch converts independent expressions concurrently, running at most
// limit conversions at once (limit <= 0 means no limit).
//
// Results are returned in input order. A malformed input does not stop the
// batch: its error is recorded in its BatchResult. The returned error is
// non-nil only when ctx is cancelled, in which case no results are returned.
func (c *Converter[T]) ConvertBatch(ctx context.Context, inputs [][]T, limit int) ([]BatchResult[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]BatchResult[T], len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, tokens := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			postfix, stats, err := c.run(tokens)
			results[i] = BatchResult[T]{Index: i, Postfix: postfix, MaxDepth: stats.deepest, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	slog.Debug("batch conversion finished", "inputs", len(inputs), "failed", failed, "limit", limit)

	return results, nil
}
