package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seqsuite",
	Short: "seqsuite — multi-algorithm pattern matching engine",
	Long:  "Exact, wildcard, motif, and fuzzy matching over text and DNA sequences.",
}

// dbPath returns the report archive location under the current directory.
func dbPath() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return filepath.Join(dir, ".seqsuite", "seqsuite.db")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(motifCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(fuzzyCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
}
