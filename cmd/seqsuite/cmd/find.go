package cmd

import (
	"fmt"

	"github.com/corey/seqsuite/internal/domain/exact"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <text> <pattern>",
	Short: "Exact substring search (linear time)",
	Long:  "Prefix-function automaton scan: O(n+m), overlapping occurrences included.",
	Args:  cobra.ExactArgs(2),
	RunE:  runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	offsets := exact.FindAll(args[0], args[1])
	if len(offsets) == 0 {
		fmt.Println("no matches")
		return nil
	}
	fmt.Printf("matches at: %v\n", offsets)
	return nil
}
