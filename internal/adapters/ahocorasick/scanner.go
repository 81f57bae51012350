// Package ahocorasick implements ports.MultiScanner using an Aho-Corasick
// automaton. It wraps the petar-dambovaliev/aho-corasick library for
// O(n + m + z) multi-pattern matching: one pass over the corpus finds every
// occurrence of every pattern, overlaps included.
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/corey/seqsuite/internal/ports"
)

// Scanner holds a compiled DFA over a fixed pattern set. The automaton is
// built once at construction and read-only afterwards, so one Scanner may
// serve concurrent Scan calls on different corpora.
type Scanner struct {
	automaton aho.AhoCorasick
	patterns  []string
}

// NewScanner compiles the automaton from the given patterns.
func NewScanner(patterns []string) *Scanner {
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	p := make([]string, len(patterns))
	copy(p, patterns)
	return &Scanner{
		automaton: builder.Build(p),
		patterns:  p,
	}
}

// Scan returns every pattern occurrence in corpus with byte offsets, in
// corpus scan order, overlapping occurrences included. Detail carries the
// matched pattern. Returns nil when nothing matches.
func (s *Scanner) Scan(corpus string) []ports.MatchResult {
	if len(s.patterns) == 0 || corpus == "" {
		return nil
	}
	iter := s.automaton.IterOverlappingByte([]byte(corpus))
	var results []ports.MatchResult
	for next := iter.Next(); next != nil; next = iter.Next() {
		m := *next
		results = append(results, ports.MatchResult{
			Start:  m.Start(),
			End:    m.End(),
			Score:  0,
			Algo:   ports.AlgoMulti,
			Detail: s.patterns[m.Pattern()],
		})
	}
	return results
}

// Patterns returns the pattern set in construction order.
func (s *Scanner) Patterns() []string {
	p := make([]string, len(s.patterns))
	copy(p, s.patterns)
	return p
}
