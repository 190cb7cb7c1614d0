package benchmark

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ondrejsvarc/bfs-iddfs-benchmark/bfs"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/iddfs"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/search"
)

// Algorithm is a bitmask selecting solver variants.
type Algorithm int

// Solver variants.
const (
	BFSSeq Algorithm = 1 << iota
	BFSPar
	IDDFSSeq
	IDDFSPar

	All = BFSSeq | BFSPar | IDDFSSeq | IDDFSPar
)

// name returns the human-readable label of a single variant.
func (a Algorithm) name() string {
	switch a {
	case BFSSeq:
		return "BFS (Sequential)"
	case BFSPar:
		return "BFS (Parallel)"
	case IDDFSSeq:
		return "IDDFS (Sequential)"
	case IDDFSPar:
		return "IDDFS (Parallel)"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Outcome is the timed result of one solver run.
type Outcome struct {
	Algorithm Algorithm
	Name      string
	Duration  time.Duration
	Found     bool
	Depth     int
	Expanded  int
	Err       error
}

// Option configures harness behavior.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets a structured logger for per-run progress; the default
// discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// run order when several variants are selected.
var runOrder = []Algorithm{BFSSeq, BFSPar, IDDFSSeq, IDDFSPar}

// Run times every variant selected by mask on root, in the fixed order
// BFSSeq, BFSPar, IDDFSSeq, IDDFSPar. Each solve gets fresh solver state;
// an individual failure (including context cancellation) is recorded in the
// Outcome and does not stop the remaining variants.
func Run(ctx context.Context, root search.State, mask Algorithm, opts ...Option) []Outcome {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	var outcomes []Outcome
	for _, alg := range runOrder {
		if mask&alg == 0 {
			continue
		}
		o.logger.Info("running", "algorithm", alg.name())

		start := time.Now()
		res, err := solve(ctx, root, alg)
		out := Outcome{
			Algorithm: alg,
			Name:      alg.name(),
			Duration:  time.Since(start),
			Err:       err,
			Depth:     -1,
		}
		if err == nil {
			out.Found = res.Found
			out.Depth = res.Depth
			out.Expanded = res.Expanded
		}
		o.logger.Info("finished",
			"algorithm", alg.name(),
			"duration", out.Duration,
			"found", out.Found,
			"depth", out.Depth,
			"err", err,
		)
		outcomes = append(outcomes, out)
	}

	return outcomes
}

// solve dispatches one variant.
func solve(ctx context.Context, root search.State, alg Algorithm) (*search.Result, error) {
	switch alg {
	case BFSSeq:
		return bfs.Sequential(root, bfs.WithContext(ctx))
	case BFSPar:
		return bfs.Parallel(root, bfs.WithContext(ctx))
	case IDDFSSeq:
		return iddfs.Sequential(root, iddfs.WithContext(ctx))
	case IDDFSPar:
		return iddfs.Parallel(root, iddfs.WithContext(ctx))
	default:
		return nil, fmt.Errorf("benchmark: unknown algorithm %d", int(alg))
	}
}

// Report writes a plain-text outcome table to w.
func Report(w io.Writer, outcomes []Outcome) {
	fmt.Fprintln(w, "Results:")
	fmt.Fprintln(w, "--------------------")
	for _, out := range outcomes {
		switch {
		case out.Err != nil:
			fmt.Fprintf(w, "%s: error after %v: %v\n", out.Name, out.Duration, out.Err)
		case out.Found:
			fmt.Fprintf(w, "%s: solution found at depth %d in %v (%d states expanded)\n",
				out.Name, out.Depth, out.Duration, out.Expanded)
		default:
			fmt.Fprintf(w, "%s: no solution; took %v (%d states expanded)\n",
				out.Name, out.Duration, out.Expanded)
		}
	}
	fmt.Fprintln(w, "--------------------")
}
