package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ondrejsvarc/bfs-iddfs-benchmark/hanoi"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/maze"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/problemfile"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/sat"
)

var generateCmd = &cobra.Command{
	Use:   "generate <maze|sat|hanoi>",
	Short: "Generate a problem instance and optionally save its parameters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		spec := problemfile.Spec{Problem: problemfile.Kind(args[0])}

		switch spec.Problem {
		case problemfile.KindMaze:
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")
			seed, _ := cmd.Flags().GetInt("seed")
			spec.Parameters = map[string]int{"width": width, "height": height, "seed": seed}

			root, err := maze.Generate(width, height, int64(seed))
			if err != nil {
				return err
			}
			fmt.Fprint(out, root.Render())

		case problemfile.KindSAT:
			vars, _ := cmd.Flags().GetInt("variables")
			clauses, _ := cmd.Flags().GetInt("clauses")
			maxLits, _ := cmd.Flags().GetInt("max-literals")
			seed, _ := cmd.Flags().GetInt("seed")
			spec.Parameters = map[string]int{
				"variables": vars, "clauses": clauses, "max_literals": maxLits, "seed": seed,
			}

			root, err := sat.Generate(vars, clauses, maxLits, int64(seed))
			if err != nil {
				return err
			}
			f := root.Formula()
			fmt.Fprintf(out, "SAT problem (%d variables, %d clauses)\n%s\n",
				f.Variables, len(f.Clauses), f)

		case problemfile.KindHanoi:
			pegs, _ := cmd.Flags().GetInt("pegs")
			discs, _ := cmd.Flags().GetInt("discs")
			spec.Parameters = map[string]int{"pegs": pegs, "discs": discs}

			root, err := hanoi.Generate(pegs, discs)
			if err != nil {
				return err
			}
			fmt.Fprint(out, root.Render())

		default:
			return fmt.Errorf("%w: %q", problemfile.ErrUnknownProblem, args[0])
		}

		if path, _ := cmd.Flags().GetString("out"); path != "" {
			if err := problemfile.Save(path, spec); err != nil {
				return err
			}
			fmt.Fprintf(out, "Problem saved to %s\n", path)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int("width", defaultMazeSide, "Maze width (odd, >= 5)")
	generateCmd.Flags().Int("height", defaultMazeSide, "Maze height (odd, >= 5)")
	generateCmd.Flags().Int("seed", defaultMazeSeed, "Random seed (maze and sat)")
	generateCmd.Flags().Int("variables", defaultSATVars, "SAT variable count")
	generateCmd.Flags().Int("clauses", defaultSATClauses, "SAT clause count")
	generateCmd.Flags().Int("max-literals", defaultSATMaxLits, "SAT maximum literals per clause")
	generateCmd.Flags().Int("pegs", defaultHanoiPegs, "Hanoi peg count (>= 3)")
	generateCmd.Flags().Int("discs", defaultHanoiDiscs, "Hanoi disc count (>= 1)")
	generateCmd.Flags().StringP("out", "o", "", "Save problem parameters to this file")
}
