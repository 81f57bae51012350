// Package exact implements linear-time substring search using the
// Knuth-Morris-Pratt prefix-function automaton. Search is a single pass over
// the text with no backtracking: O(|text| + |pattern|) worst case, which is
// why the batch dispatcher fans this matcher out rather than the polynomial
// ones.
package exact

// Automaton is a pattern compiled to its prefix (failure) table. It is
// immutable after Compile and safe to share read-only across goroutines
// scanning different corpora.
type Automaton struct {
	pattern string
	prefix  []int
}

// BuildPrefixTable computes the failure function for pattern: entry i is the
// length of the longest proper prefix of pattern[:i+1] that is also a suffix
// of it. On a mismatch the scan falls back to the best known prefix/suffix
// overlap instead of restarting at zero. O(|pattern|).
func BuildPrefixTable(pattern string) []int {
	lps := make([]int, len(pattern))
	length := 0
	i := 1
	for i < len(pattern) {
		if pattern[i] == pattern[length] {
			length++
			lps[i] = length
			i++
		} else if length != 0 {
			length = lps[length-1]
		} else {
			lps[i] = 0
			i++
		}
	}
	return lps
}

// Compile builds the automaton for pattern once; reuse it across scans.
func Compile(pattern string) *Automaton {
	return &Automaton{pattern: pattern, prefix: BuildPrefixTable(pattern)}
}

// Pattern returns the pattern the automaton was compiled from.
func (a *Automaton) Pattern() string { return a.pattern }

// FindAll returns the start offset of every occurrence of the pattern in
// text, ascending, overlapping occurrences included. Empty pattern or empty
// text yields no offsets.
func (a *Automaton) FindAll(text string) []int {
	m := len(a.pattern)
	if m == 0 || len(text) == 0 {
		return nil
	}
	var matches []int
	i, j := 0, 0
	for i < len(text) {
		if a.pattern[j] == text[i] {
			i++
			j++
		}
		if j == m {
			matches = append(matches, i-j)
			// Fall back, don't restart: overlapping occurrences count.
			j = a.prefix[j-1]
		} else if i < len(text) && a.pattern[j] != text[i] {
			if j != 0 {
				j = a.prefix[j-1]
			} else {
				i++
			}
		}
	}
	return matches
}

// FindAll compiles pattern and scans text in one call. For repeated scans
// with the same pattern, Compile once and reuse the automaton.
func FindAll(text, pattern string) []int {
	return Compile(pattern).FindAll(text)
}
