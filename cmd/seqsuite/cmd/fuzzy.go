package cmd

import (
	"fmt"

	"github.com/corey/seqsuite/internal/domain/fuzzy"
	"github.com/spf13/cobra"
)

var fuzzyMaxDistance int

var fuzzyCmd = &cobra.Command{
	Use:   "fuzzy <text> <pattern>",
	Short: "Fixed-window fuzzy search (Hamming distance)",
	Args:  cobra.ExactArgs(2),
	RunE:  runFuzzy,
}

func init() {
	fuzzyCmd.Flags().IntVarP(&fuzzyMaxDistance, "max-distance", "d", 2, "Mismatch budget per window")
}

func runFuzzy(cmd *cobra.Command, args []string) error {
	results := fuzzy.Find(args[0], args[1], fuzzyMaxDistance)
	if len(results) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, r := range results {
		fmt.Printf("pos %d-%d: score=%d (%s)\n", r.Start, r.End, r.Score, r.Detail)
	}
	return nil
}
