package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "solverbench",
	Short: "Benchmark BFS and IDDFS solvers on state-space search problems",
	Long: `solverbench generates maze, SAT, and Tower of Hanoi instances and
compares sequential and parallel BFS and IDDFS solvers on them.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log solver progress to stderr")
}
