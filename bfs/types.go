// Package bfs provides tunable options and error definitions
// for breadth-first search over a search.State space.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. non-positive worker count), it is recorded
// internally and surfaced as ErrOptionViolation when the solver is invoked.
type Option func(*Options)

// Options holds parameters to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Workers bounds the number of frontier members expanded concurrently
	// per round of the parallel solver. Ignored by Sequential.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Workers == GOMAXPROCS.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds per-round concurrency of the parallel solver.
//
//	n > 0: expand at most n frontier members at a time
//	n <= 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
