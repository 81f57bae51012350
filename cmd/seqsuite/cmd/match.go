package cmd

import (
	"fmt"

	"github.com/corey/seqsuite/internal/domain/wildcard"
	"github.com/spf13/cobra"
)

var matchStarts bool

var matchCmd = &cobra.Command{
	Use:   "match <text> <pattern>",
	Short: "Wildcard match with ? and *",
	Long:  "Full-match glob semantics: '?' consumes one symbol, '*' zero or more.",
	Args:  cobra.ExactArgs(2),
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().BoolVarP(&matchStarts, "starts", "s", false, "List every offset whose suffix matches")
}

func runMatch(cmd *cobra.Command, args []string) error {
	text, pattern := args[0], args[1]
	if matchStarts {
		starts := wildcard.FindStarts(text, pattern)
		if len(starts) == 0 {
			fmt.Println("no matches")
			return nil
		}
		fmt.Printf("matches at: %v\n", starts)
		return nil
	}
	fmt.Println(wildcard.Match(text, pattern))
	return nil
}
