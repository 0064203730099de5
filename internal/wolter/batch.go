package wolter

import (
	"context"
	"fmt"
	"math/rand"
)

// Ray is a numbered input ray.
type Ray struct {
	ID        int
	Origin    Vector3
	Direction Vector3
}

// TraceFunc consumes one finished trace; returning an error stops the batch.
type TraceFunc func(r Ray, tr Trace) error

// TraceBatch traces rays one after another and stops early when ctx is cancelled.
func TraceBatch(ctx context.Context, tracer *Tracer, rays []Ray, fn TraceFunc) error {
	return traceEach(ctx, tracer, len(rays), func(i int) Ray { return rays[i] }, fn)
}

// TraceSource traces n rays sampled from src.
func TraceSource(ctx context.Context, tracer *Tracer, src *PointSource, n int, rng *rand.Rand, fn TraceFunc) error {
	return traceEach(ctx, tracer, n, func(i int) Ray {
		r := src.Sample(rng)
		r.ID = i
		return r
	}, fn)
}

func traceEach(ctx context.Context, tracer *Tracer, n int, next func(i int) Ray, fn TraceFunc) error {
	for i := 0; i < n; i++ {
		// cooperative cancellation between rays, never mid-trace
		if err := ctx.Err(); err != nil {
			return err
		}
		r := next(i)
		tr, err := tracer.Trace(r.Origin, r.Direction)
		if err != nil {
			return fmt.Errorf("ray %d: %w", r.ID, err)
		}
		if fn != nil {
			if err := fn(r, tr); err != nil {
				return err
			}
		}
	}
	return nil
}

// progress prints [PROGRESS] lines about every 1% of total.
func progress(total int) func() {
	done := 0
	step := 1
	if total >= 100 {
		step = total / 100
	}
	return func() {
		done++
		if done%step == 0 {
			fmt.Printf("[PROGRESS] %.2f%%\n", Real(done)*100/Real(total))
		}
	}
}
