// seqsuite is a multi-algorithm pattern matching engine for text and
// biological sequences. Single binary, zero config.
package main

import (
	"os"

	"github.com/corey/seqsuite/cmd/seqsuite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
