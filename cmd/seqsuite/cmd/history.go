package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse the report archive",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved report labels",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <label>",
	Short: "Print a saved report",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyRmCmd = &cobra.Command{
	Use:   "rm <label>",
	Short: "Delete a saved report",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRm,
}

func init() {
	historyShowCmd.Flags().BoolVar(&historyJSON, "json", false, "Emit the report as JSON")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRmCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := newArchive()
	if err != nil {
		return err
	}
	defer store.Close()

	labels, err := store.ListReports()
	if err != nil {
		return err
	}
	if len(labels) == 0 {
		fmt.Println("no saved reports")
		return nil
	}
	for _, label := range labels {
		fmt.Println(label)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := newArchive()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.LoadReport(args[0])
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no report saved as %q", args[0])
	}
	if historyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}
	printRecord(rec)
	return nil
}

func runHistoryRm(cmd *cobra.Command, args []string) error {
	store, err := newArchive()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteReport(args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %q\n", args[0])
	return nil
}
