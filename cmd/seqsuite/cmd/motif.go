package cmd

import (
	"fmt"

	"github.com/corey/seqsuite/internal/domain/motif"
	"github.com/spf13/cobra"
)

var motifMaxMismatches int

var motifCmd = &cobra.Command{
	Use:   "motif <sequence> <motif>",
	Short: "Bounded-mismatch motif scan",
	Long:  "Aligns the motif left to right, allowing sequence skips and counting substitutions.",
	Args:  cobra.ExactArgs(2),
	RunE:  runMotif,
}

func init() {
	motifCmd.Flags().IntVarP(&motifMaxMismatches, "max-mismatches", "m", 2, "Mismatch budget")
}

func runMotif(cmd *cobra.Command, args []string) error {
	seq, m := args[0], args[1]
	hits := motif.Find(seq, m, motifMaxMismatches)
	if len(hits) == 0 {
		fmt.Println("no feasible alignment")
		return nil
	}
	for _, h := range hits {
		end := h.Start + len(m)
		if end > len(seq) {
			end = len(seq)
		}
		fmt.Printf("pos %d: %q (distance=%d)\n", h.Start, seq[h.Start:end], h.Mismatches)
	}
	return nil
}
