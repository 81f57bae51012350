package cmd

import (
	"fmt"

	"github.com/corey/seqsuite/internal/adapters/ahocorasick"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan <text> <pattern>...",
	Short: "Multi-pattern scan (Aho-Corasick)",
	Long:  "One pass over the text finds every occurrence of every pattern, overlaps included.",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	scanner := ahocorasick.NewScanner(args[1:])
	results := scanner.Scan(args[0])
	if len(results) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, r := range results {
		fmt.Printf("pos %d-%d: %q\n", r.Start, r.End, r.Detail)
	}
	return nil
}
