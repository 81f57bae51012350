package cmd

import (
	"fmt"

	"github.com/corey/seqsuite/internal/app"
	"github.com/corey/seqsuite/internal/domain/batch"
	"github.com/spf13/cobra"
)

var (
	batchPattern string
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch -p <pattern> <file>...",
	Short: "Parallel exact search across files",
	Long:  "Fans the linear matcher out over independent files on a fixed worker pool. Output order matches input order.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchPattern, "pattern", "p", "", "Pattern to search for (required)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", batch.DefaultWorkers, "Worker pool size")
	batchCmd.MarkFlagRequired("pattern")
}

func runBatch(cmd *cobra.Command, args []string) error {
	svc := app.NewService(nil, nil, nil)
	results, err := svc.BatchFiles(args, batchPattern, batchWorkers)
	if err != nil {
		return err
	}
	total := 0
	for i, offsets := range results {
		fmt.Printf("%s: %v\n", args[i], offsets)
		total += len(offsets)
	}
	fmt.Printf("%d total matches across %d files\n", total, len(args))
	return nil
}
