package aoc

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Parallel calls f on every element of in using at most jobs goroutines
// (one per CPU if jobs <= 0) and returns the results in input order.
// The first error cancels the remaining calls and is returned.
func Parallel[I, O any](ctx context.Context, jobs int, in []I, f func(int, I) (O, error)) ([]O, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(in), 1)))

	out := make([]O, len(in))
	for i, v := range in {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			o, err := f(i, v)
			if err != nil {
				return err
			}
			out[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Fold reduces in to a single value, starting from defVal.
func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

// ParallelMapFold maps in with f in parallel and folds the results with f2.
func ParallelMapFold[A, B, C any](ctx context.Context, jobs int, in []A, f func(int, A) (B, error), f2 func(C, B) C, defVal C) (C, error) {
	mapped, err := Parallel(ctx, jobs, in, f)
	if err != nil {
		var zero C
		return zero, err
	}
	return Fold(mapped, f2, defVal), nil
}
