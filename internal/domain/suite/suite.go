// Package suite orchestrates every matching algorithm against one corpus and
// a pattern list, merging the typed results into a single report. The suite
// itself holds no mutable state: diagnostics are owned by the query and
// returned with the results, so concurrent Analyze calls never interact.
package suite

import (
	"fmt"
	"time"

	"github.com/corey/seqsuite/internal/domain/exact"
	"github.com/corey/seqsuite/internal/domain/fuzzy"
	"github.com/corey/seqsuite/internal/domain/motif"
	"github.com/corey/seqsuite/internal/domain/wildcard"
	"github.com/corey/seqsuite/internal/ports"
)

// excerptLen is how much corpus to quote alongside a wildcard hit.
const excerptLen = 10

// ScannerFactory builds a multi-pattern scanner for one pattern set.
// The app layer supplies the Aho-Corasick adapter here; a nil factory
// disables the multi-pattern section of the report.
type ScannerFactory func(patterns []string) ports.MultiScanner

// Stats are query-scoped diagnostic counters. Calls counts matcher
// invocations; it never affects results and is reset for every query.
type Stats struct {
	Calls   uint64        `json:"calls"`
	Elapsed time.Duration `json:"elapsed"`
}

// Report is the merged output of one Analyze call, keyed by algorithm.
type Report struct {
	CorpusLength int
	Patterns     []string
	MotifBudget  int

	Wildcard []ports.MatchResult
	Motif    []ports.MatchResult
	Exact    map[string][]int // pattern -> occurrence starts
	Fuzzy    []ports.MatchResult
	Multi    []ports.MatchResult

	Stats Stats
}

// Results groups the positional results by algorithm tag. Exact offsets keep
// their own per-pattern map on the Report; they are not duplicated here.
func (r *Report) Results() map[ports.Algo][]ports.MatchResult {
	return map[ports.Algo][]ports.MatchResult{
		ports.AlgoWildcard: r.Wildcard,
		ports.AlgoMotif:    r.Motif,
		ports.AlgoFuzzy:    r.Fuzzy,
		ports.AlgoMulti:    r.Multi,
	}
}

// Analyzer runs the full algorithm suite. Zero value is usable; the scanner
// factory is optional.
type Analyzer struct {
	newScanner ScannerFactory
}

// NewAnalyzer returns an Analyzer. factory may be nil.
func NewAnalyzer(factory ScannerFactory) *Analyzer {
	return &Analyzer{newScanner: factory}
}

// Analyze runs every algorithm against corpus for every pattern:
// wildcard suffix matching at every start offset, bounded-mismatch motif
// scanning within motifBudget, exact search (one automaton build per
// pattern), fuzzy fixed-window scanning, and — when a scanner factory is
// configured — one multi-pattern pass over all patterns at once.
// The fuzzy section covers every pattern, not just the first.
//
// An empty pattern list produces an empty report, not an error. The corpus
// and patterns are never mutated; repeated calls yield identical reports.
func (a *Analyzer) Analyze(corpus string, patterns []string, motifBudget int) *Report {
	began := time.Now()
	rep := &Report{
		CorpusLength: len(corpus),
		Patterns:     patterns,
		MotifBudget:  motifBudget,
		Exact:        make(map[string][]int, len(patterns)),
	}

	for _, pat := range patterns {
		rep.Stats.Calls++
		for _, start := range wildcard.FindStarts(corpus, pat) {
			rep.Wildcard = append(rep.Wildcard, ports.MatchResult{
				Start:  start,
				End:    len(corpus),
				Algo:   ports.AlgoWildcard,
				Detail: fmt.Sprintf("%q: %s", pat, excerpt(corpus, start)),
			})
		}

		rep.Stats.Calls++
		for _, hit := range motif.Find(corpus, pat, motifBudget) {
			rep.Motif = append(rep.Motif, ports.MatchResult{
				Start:  hit.Start,
				End:    hit.Start + len(pat),
				Score:  hit.Mismatches,
				Algo:   ports.AlgoMotif,
				Detail: fmt.Sprintf("%q: %d mismatches", pat, hit.Mismatches),
			})
		}

		rep.Stats.Calls++
		rep.Exact[pat] = exact.FindAll(corpus, pat)

		rep.Stats.Calls++
		hits := fuzzy.Find(corpus, pat, motifBudget)
		for i := range hits {
			hits[i].Detail = fmt.Sprintf("%q: %s", pat, hits[i].Detail)
		}
		rep.Fuzzy = append(rep.Fuzzy, hits...)
	}

	if a.newScanner != nil && len(patterns) > 0 {
		rep.Stats.Calls++
		rep.Multi = a.newScanner(patterns).Scan(corpus)
	}

	rep.Stats.Elapsed = time.Since(began)
	return rep
}

// excerpt quotes up to excerptLen corpus symbols from start, with an
// ellipsis when truncated.
func excerpt(corpus string, start int) string {
	end := start + excerptLen
	if end >= len(corpus) {
		return corpus[start:]
	}
	return corpus[start:end] + "..."
}
