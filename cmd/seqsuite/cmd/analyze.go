package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/corey/seqsuite/internal/adapters/ahocorasick"
	"github.com/corey/seqsuite/internal/adapters/bbolt"
	"github.com/corey/seqsuite/internal/app"
	"github.com/corey/seqsuite/internal/ports"
	"github.com/spf13/cobra"
)

var (
	analyzePatterns []string
	analyzeBudget   int
	analyzeFile     string
	analyzeSave     string
	analyzeJSON     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Run every algorithm and merge the results",
	Long:  "Wildcard, motif, exact, fuzzy, and multi-pattern scans over one corpus, merged into a single report.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringArrayVarP(&analyzePatterns, "pattern", "p", nil, "Pattern (repeatable)")
	f.IntVarP(&analyzeBudget, "max-mismatches", "m", 2, "Motif/fuzzy mismatch budget")
	f.StringVarP(&analyzeFile, "file", "f", "", "Read corpus from file instead of argument")
	f.StringVar(&analyzeSave, "save", "", "Persist the report under this label")
	f.BoolVar(&analyzeJSON, "json", false, "Emit the report as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if len(analyzePatterns) == 0 {
		return fmt.Errorf("at least one --pattern is required")
	}
	if analyzeFile == "" && len(args) == 0 {
		return fmt.Errorf("supply corpus text or --file")
	}

	var storage ports.Storage
	if analyzeSave != "" {
		store, err := newArchive()
		if err != nil {
			return err
		}
		storage = store
	}
	svc := app.NewService(func(patterns []string) ports.MultiScanner {
		return ahocorasick.NewScanner(patterns)
	}, storage, nil)
	defer svc.Close()

	var rec *ports.ReportRecord
	var err error
	if analyzeFile != "" {
		rec, err = svc.AnalyzeFile(analyzeSave, analyzeFile, analyzePatterns, analyzeBudget)
	} else {
		rec, err = svc.AnalyzeText(analyzeSave, args[0], analyzePatterns, analyzeBudget)
	}
	if err != nil {
		return err
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}
	printRecord(rec)
	if analyzeSave != "" {
		fmt.Printf("saved as %q\n", analyzeSave)
	}
	return nil
}

// newArchive opens the report archive, creating its directory if needed.
func newArchive() (*bbolt.Store, error) {
	path := dbPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return bbolt.NewStore(path)
}

// printRecord renders a report in the human-readable layout.
func printRecord(rec *ports.ReportRecord) {
	fmt.Printf("corpus: %d symbols, %d patterns, budget %d\n",
		rec.CorpusLength, len(rec.Patterns), rec.MotifBudget)
	for pat, offsets := range rec.ExactOffsets {
		fmt.Printf("  exact    %-12q %v\n", pat, offsets)
	}
	for _, algo := range []ports.Algo{ports.AlgoWildcard, ports.AlgoMotif, ports.AlgoFuzzy, ports.AlgoMulti} {
		for _, r := range rec.Results[algo] {
			fmt.Printf("  %-8s pos %d-%d score=%d %s\n", algo, r.Start, r.End, r.Score, r.Detail)
		}
	}
	fmt.Printf("  %d matcher calls, %dms\n", rec.Calls, rec.ElapsedMs)
}
