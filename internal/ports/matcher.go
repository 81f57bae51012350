// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

// Algo identifies which matching algorithm produced a result.
type Algo string

const (
	AlgoWildcard Algo = "wildcard" // glob-style ?/* matcher
	AlgoMotif    Algo = "motif"    // bounded-mismatch motif scanner
	AlgoExact    Algo = "exact"    // prefix-function (KMP) matcher
	AlgoFuzzy    Algo = "fuzzy"    // fixed-window Hamming scanner
	AlgoMulti    Algo = "multi"    // multi-pattern Aho-Corasick scan
)

// MatchResult is the standardized match result format shared by every
// algorithm. Start/End are byte offsets into the corpus (End exclusive).
// Score is 0 for exact matches, otherwise the mismatch count.
// Immutable once produced; the caller owns returned results.
type MatchResult struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Score  int    `json:"score"`
	Algo   Algo   `json:"algo"`
	Detail string `json:"detail,omitempty"`
}

// MultiScanner finds every occurrence of a fixed pattern set in a corpus
// using multi-pattern matching (Aho-Corasick). A single pass finds all
// matching patterns simultaneously, O(n + m + z) where n=corpus length,
// m=total pattern length, z=number of matches.
//
// The automaton is built once at construction and is read-only afterwards,
// so a scanner is safe for concurrent use across corpora.
type MultiScanner interface {
	// Scan returns all pattern occurrences in corpus with byte offsets,
	// overlapping occurrences included, in corpus scan order.
	// Returns nil when nothing matches.
	Scan(corpus string) []MatchResult

	// Patterns returns the pattern set the automaton was built from,
	// in construction order.
	Patterns() []string
}
