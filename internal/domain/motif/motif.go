// Package motif implements bounded-mismatch motif scanning for sequences
// such as DNA. A motif is consumed strictly left to right against a window
// of the text; the window may be stretched by skipping text symbols, and
// each aligned pair that differs costs one substitution mismatch.
//
// The source recurrence is a memoized recursion; here it is an explicit
// bottom-up table over (text position, motif position), one row per text
// offset, so repetitive sequences cost O(|text| × |motif|) instead of
// exponential time. Wildcard characters have no meaning here — every symbol
// is a literal.
package motif

import "math"

// Unreachable marks alignments where not enough text remains to finish the
// motif. It never escapes the package: budget filtering removes it and
// MinMismatches reports feasibility separately.
const Unreachable = math.MaxInt32

// Hit is one feasible motif placement.
type Hit struct {
	Start      int // text offset where the alignment begins
	Mismatches int // minimum substitution count for that alignment
}

// solve fills the DP table. cell(i, j) holds the minimum mismatches needed
// to align motif[j:] starting at text[i], or Unreachable when
// i + len(motif) - j exceeds len(text).
//
// Recurrence: align text[i] with motif[j] (paying 1 on a mismatch) and
// advance both, or skip text[i] without advancing the motif; keep the
// cheaper branch.
func solve(text, motif string) []int {
	n, m := len(text), len(motif)
	stride := m + 1
	cells := make([]int, (n+1)*stride)

	for j := 0; j < m; j++ {
		cells[n*stride+j] = Unreachable
	}
	// cells[n*stride+m] is 0: motif fully consumed.

	for i := n - 1; i >= 0; i-- {
		row := i * stride
		next := (i + 1) * stride
		for j := m; j >= 0; j-- {
			switch {
			case j == m:
				cells[row+j] = 0
			case i+m-j > n:
				cells[row+j] = Unreachable
			default:
				cost := 0
				if text[i] != motif[j] {
					cost = 1
				}
				align := cells[next+j+1]
				if align != Unreachable {
					align += cost
				}
				skip := cells[next+j]
				if skip < align {
					align = skip
				}
				cells[row+j] = align
			}
		}
	}
	return cells
}

// MinMismatches returns the minimum number of substitutions needed to align
// motif against text starting at offset start, and whether any alignment is
// feasible. Infeasible (not enough text remaining, or start out of range)
// reports ok == false, never an error.
func MinMismatches(text, motif string, start int) (int, bool) {
	if start < 0 || start > len(text) {
		return 0, false
	}
	cells := solve(text, motif)
	d := cells[start*(len(motif)+1)]
	if d == Unreachable {
		return 0, false
	}
	return d, true
}

// Find returns every start offset whose minimum mismatch count is within
// maxMismatches, ordered by ascending start. Starts are unique so the
// ordering is total; mismatch counts ride along for reporting. A motif
// longer than the text yields no hits.
func Find(text, motif string, maxMismatches int) []Hit {
	n, m := len(text), len(motif)
	if m > n {
		return nil
	}
	cells := solve(text, motif)
	stride := m + 1
	var hits []Hit
	for start := 0; start <= n-m; start++ {
		d := cells[start*stride]
		if d != Unreachable && d <= maxMismatches {
			hits = append(hits, Hit{Start: start, Mismatches: d})
		}
	}
	return hits
}
