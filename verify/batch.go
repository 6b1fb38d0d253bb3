package verify

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dataverify/fault"
	"github.com/katalvlaran/dataverify/schema"
)

// VerifyBatch checks many records against root in one call. See Checker.VerifyBatch.
func VerifyBatch(ctx context.Context, raws []map[string]any, root schema.Node, opts ...Option) ([]map[string]any, error) {
	c, err := Compile(root, opts...)
	if err != nil {
		return nil, err
	}

	return c.VerifyBatch(ctx, raws)
}

// VerifyBatch verifies raws concurrently, at most WithConcurrency at a time.
//
// out[i] is the verified form of raws[i]. The first failure cancels the
// remaining work and is returned tagged with its record index
// (fault.Error.Index); with concurrency 1 that is the lowest failing index.
// Cancelling ctx stops the batch with ctx.Err().
func (c *Checker) VerifyBatch(ctx context.Context, raws []map[string]any) ([]map[string]any, error) {
	out := make([]map[string]any, len(raws))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.concurrency)

	for i, raw := range raws {
		if gctx.Err() != nil {
			break
		}
		i, raw := i, raw
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := walk(raw, c.root)
			if err != nil {
				return fault.AtIndex(err, i)
			}
			out[i] = rec
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		c.opts.logger.Debug("verify: batch rejected",
			slog.Int("records", len(raws)),
			slog.Any("error", err))
		return nil, err
	}

	return out, nil
}
