package cmd

import (
	"fmt"

	"github.com/corey/seqsuite/internal/app"
	"github.com/spf13/cobra"
)

var benchSize int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time each algorithm on a synthetic corpus",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchSize, "size", 10000, "Synthetic corpus size in symbols")
}

func runBench(cmd *cobra.Command, args []string) error {
	fmt.Printf("benchmark: %d-symbol AGCT corpus\n", benchSize)
	for _, t := range app.Bench(benchSize) {
		fmt.Printf("  %-10s %8d matches  %v\n", t.Name, t.Matches, t.Elapsed)
	}
	return nil
}
