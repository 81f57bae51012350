package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/corey/seqsuite/internal/adapters/ahocorasick"
	fsw "github.com/corey/seqsuite/internal/adapters/fsnotify"
	"github.com/corey/seqsuite/internal/app"
	"github.com/corey/seqsuite/internal/ports"
	"github.com/spf13/cobra"
)

var (
	watchPatterns []string
	watchBudget   int
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-analyze a corpus file whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringArrayVarP(&watchPatterns, "pattern", "p", nil, "Pattern (repeatable)")
	watchCmd.Flags().IntVarP(&watchBudget, "max-mismatches", "m", 2, "Motif/fuzzy mismatch budget")
	watchCmd.MarkFlagRequired("pattern")
}

func runWatch(cmd *cobra.Command, args []string) error {
	watcher, err := fsw.NewWatcher()
	if err != nil {
		return err
	}
	svc := app.NewService(func(patterns []string) ports.MultiScanner {
		return ahocorasick.NewScanner(patterns)
	}, nil, watcher)
	defer svc.Close()

	err = svc.WatchFile(args[0], watchPatterns, watchBudget, func(rec *ports.ReportRecord, err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		printRecord(rec)
	})
	if err != nil {
		return err
	}

	fmt.Printf("watching %s — ctrl-c to stop\n", args[0])
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	return nil
}
