// Package fuzzy implements fixed-window approximate matching. Every window
// of length |pattern| is scored by Hamming distance — position-wise symbol
// mismatches only, no shifts, insertions, or deletions — and reported when
// the distance stays within the caller's budget.
// O((|text| − |pattern|) × |pattern|).
package fuzzy

import (
	"fmt"

	"github.com/corey/seqsuite/internal/ports"
)

// Find slides a |pattern|-length window across every start offset of text
// and returns the windows whose Hamming distance to pattern is at most
// maxDistance, ordered by ascending start. A pattern longer than the text
// (or empty) yields no windows — empty result, not an error.
func Find(text, pattern string, maxDistance int) []ports.MatchResult {
	m := len(pattern)
	if m == 0 || m > len(text) {
		return nil
	}
	var results []ports.MatchResult
	for i := 0; i+m <= len(text); i++ {
		distance := 0
		for k := 0; k < m; k++ {
			if text[i+k] != pattern[k] {
				distance++
			}
		}
		if distance <= maxDistance {
			results = append(results, ports.MatchResult{
				Start:  i,
				End:    i + m,
				Score:  distance,
				Algo:   ports.AlgoFuzzy,
				Detail: fmt.Sprintf("%d mismatches", distance),
			})
		}
	}
	return results
}
