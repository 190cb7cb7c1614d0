// Package iddfs provides tunable options and error definitions
// for iterative-deepening depth-first search.
package iddfs

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("iddfs: invalid option supplied")

// DefaultForkDepth is the depth threshold below which the parallel solver
// forks child subtrees as independent tasks.
const DefaultForkDepth = 8

// Option configures IDDFS behavior via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced as
// ErrOptionViolation when the solver is invoked.
type Option func(*Options)

// Options holds parameters to customize IDDFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines. On a goal-free state space
	// the search runs forever unless this context (or MaxDepth) bounds it.
	Ctx context.Context

	// MaxDepth, if > 0, caps the outer depth limit: when a pass at this
	// limit finds no goal the search concludes with a not-found Result.
	// A value of 0 disables the cap.
	MaxDepth int

	// ForkDepth is the depth threshold for task fan-out in the parallel
	// solver; below it child subtrees may fork, at or beyond it recursion
	// is inline. Ignored by Sequential.
	ForkDepth int

	// TaskLimit bounds the number of concurrently running forked tasks of
	// the parallel solver. Ignored by Sequential.
	TaskLimit int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth cap (MaxDepth == 0)
//   - ForkDepth == DefaultForkDepth
//   - TaskLimit == GOMAXPROCS.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxDepth:  0,
		ForkDepth: DefaultForkDepth,
		TaskLimit: runtime.GOMAXPROCS(0),
		err:       nil,
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

// WithMaxDepth caps the outer depth limit.
//
//	d > 0: conclude not-found once a pass at limit d fails
//	d == 0: explicit "no cap" (search is bounded only by the context)
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithForkDepth sets the parallel fan-out threshold.
//
//	d > 0: fork child subtrees while the current depth is below d
//	d == 0: never fork (parallel solver degenerates to inline recursion)
//	d < 0: invalid option → ErrOptionViolation
func WithForkDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: ForkDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.ForkDepth = d
	}
}

// WithTaskLimit bounds concurrent forked tasks of the parallel solver.
//
//	n > 0: at most n tasks in flight
//	n <= 0: invalid option → ErrOptionViolation
func WithTaskLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: TaskLimit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.TaskLimit = n
	}
}
