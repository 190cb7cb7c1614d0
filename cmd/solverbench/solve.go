package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ondrejsvarc/bfs-iddfs-benchmark/benchmark"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/hanoi"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/maze"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/problemfile"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/sat"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/search"
)

// Default instances, matching the historical benchmark configurations.
const (
	defaultMazeSide = 69
	defaultMazeSeed = 8

	defaultSATVars    = 14
	defaultSATClauses = 9
	defaultSATMaxLits = 4
	defaultSATSeed    = 1

	defaultHanoiPegs  = 3
	defaultHanoiDiscs = 4
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the selected solver variants on a problem instance",
	Long: `Solves a generated or loaded problem with the selected algorithms.
Without --bfs/--iddfs and --sequential/--parallel, all four variants run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		isMaze, _ := cmd.Flags().GetBool("maze")
		isSAT, _ := cmd.Flags().GetBool("sat")
		isHanoi, _ := cmd.Flags().GetBool("hanoi")
		file, _ := cmd.Flags().GetString("file")

		picked := 0
		for _, b := range []bool{isMaze, isSAT, isHanoi, file != ""} {
			if b {
				picked++
			}
		}
		if picked > 1 {
			return fmt.Errorf("only one of --maze, --sat, --hanoi, or --file may be given")
		}

		var (
			root search.State
			err  error
		)
		switch {
		case file != "":
			var spec problemfile.Spec
			if spec, err = problemfile.Load(file); err != nil {
				return err
			}
			root, err = spec.Root()
		case isMaze:
			root, err = maze.Generate(defaultMazeSide, defaultMazeSide, defaultMazeSeed)
		case isHanoi:
			root, err = hanoi.Generate(defaultHanoiPegs, defaultHanoiDiscs)
		default: // SAT is the historical default problem
			root, err = sat.Generate(defaultSATVars, defaultSATClauses, defaultSATMaxLits, defaultSATSeed)
		}
		if err != nil {
			return err
		}

		mask, err := algorithmMask(cmd)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		outcomes := benchmark.Run(ctx, root, mask, benchmark.WithLogger(logger(cmd)))
		benchmark.Report(cmd.OutOrStdout(), outcomes)

		return nil
	},
}

// algorithmMask combines the --bfs/--iddfs and --sequential/--parallel
// selections into a benchmark bitmask; unconstrained axes select everything.
func algorithmMask(cmd *cobra.Command) (benchmark.Algorithm, error) {
	isBFS, _ := cmd.Flags().GetBool("bfs")
	isIDDFS, _ := cmd.Flags().GetBool("iddfs")
	isSeq, _ := cmd.Flags().GetBool("sequential")
	isPar, _ := cmd.Flags().GetBool("parallel")

	if isBFS && isIDDFS {
		return 0, fmt.Errorf("--bfs cannot be combined with --iddfs")
	}
	if isSeq && isPar {
		return 0, fmt.Errorf("--sequential cannot be combined with --parallel")
	}

	mask := benchmark.All
	if isBFS {
		mask &= benchmark.BFSSeq | benchmark.BFSPar
	}
	if isIDDFS {
		mask &= benchmark.IDDFSSeq | benchmark.IDDFSPar
	}
	if isSeq {
		mask &= benchmark.BFSSeq | benchmark.IDDFSSeq
	}
	if isPar {
		mask &= benchmark.BFSPar | benchmark.IDDFSPar
	}

	return mask, nil
}

// logger builds the harness logger: stderr text when --verbose, else discard.
func logger(cmd *cobra.Command) *slog.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().BoolP("maze", "m", false, "Solve the default maze instance (69x69, seed 8)")
	solveCmd.Flags().BoolP("sat", "s", false, "Solve the default SAT instance (14 vars, 9 clauses, 4 literals, seed 1)")
	solveCmd.Flags().Bool("hanoi", false, "Solve the default Hanoi instance (3 pegs, 4 discs)")
	solveCmd.Flags().StringP("file", "f", "", "Load the problem from a file")
	solveCmd.Flags().BoolP("parallel", "P", false, "Run only parallel variants")
	solveCmd.Flags().BoolP("sequential", "S", false, "Run only sequential variants")
	solveCmd.Flags().Bool("bfs", false, "Run only BFS variants")
	solveCmd.Flags().Bool("iddfs", false, "Run only IDDFS variants")
	solveCmd.Flags().Duration("timeout", time.Duration(0), "Abort solves after this long (0 = no limit)")
}
