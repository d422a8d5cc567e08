package falloff

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minBatch is the smallest number of parameters handed to one goroutine.
const minBatch = 64

// Params returns n+1 evenly spaced parameters from 0 to 1 inclusive. n is
// raised to 1 if smaller.
func Params(n int) []float64 {
	n = max(n, 1)
	ts := make([]float64, n+1)
	for i := range ts {
		ts[i] = float64(i) / float64(n)
	}
	ts[n] = 1
	return ts
}

// Sample evaluates p at every parameter in ts, using up to workers
// goroutines. workers ≤ 0 means runtime.GOMAXPROCS(0).
//
// p must be configured, and must not be reconfigured until Sample returns.
// Parameters outside [0, 1] are reported as errors wrapping [ErrParamRange]
// before any evaluation happens. If ctx is cancelled, Sample stops handing
// out work and returns the context's error.
func Sample(ctx context.Context, p Potential, ts []float64, workers int) ([]float64, error) {
	for i, t := range ts {
		if !(t >= 0 && t <= 1) {
			return nil, fmt.Errorf("%w: ts[%d] = %v", ErrParamRange, i, t)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	batch := max((len(ts)+workers-1)/workers, minBatch)
	Logger().Debug("sampling potential", "count", len(ts), "workers", workers, "batch", batch)

	out := make([]float64, len(ts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < len(ts); lo += batch {
		if gctx.Err() != nil {
			break
		}
		hi := min(lo+batch, len(ts))
		g.Go(func() (err error) {
			if err := gctx.Err(); err != nil {
				return err
			}
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("falloff: evaluating ts[%d:%d]: %v", lo, hi, r)
				}
			}()
			for i := lo; i < hi; i++ {
				out[i] = p.Evaluate(ts[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop may have stopped early without any goroutine seeing the
	// cancellation.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
