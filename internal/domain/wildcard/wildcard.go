// Package wildcard implements glob-style pattern matching where '?' consumes
// exactly one symbol and '*' consumes zero or more. Matching is full-match:
// the pattern must account for every symbol of the text.
//
// The source recurrence is a memoized recursion over (text position, pattern
// position). Here it is an explicit bottom-up table of the same shape,
// (len(text)+1) × (len(pattern)+1), so large inputs cannot blow the stack.
// The table is allocated per call and never shared across queries.
package wildcard

// table holds the solved subproblems for one (text, pattern) pair.
// cell(i, j) answers: does text[i:] match pattern[j:]?
type table struct {
	cells  []bool
	stride int // len(pattern)+1
}

func (t *table) at(i, j int) bool { return t.cells[i*t.stride+j] }

func (t *table) set(i, j int, v bool) { t.cells[i*t.stride+j] = v }

// solve fills the full DP table for text vs pattern, bottom-up.
//
// Base cases: both exhausted is a match; text exhausted matches only if the
// remaining pattern is all '*'; pattern exhausted with text left is not.
// Transition: '*' succeeds by skipping itself or consuming one text symbol;
// '?' or an equal literal consumes one symbol of each.
func solve(text, pattern string) *table {
	n, m := len(text), len(pattern)
	t := &table{cells: make([]bool, (n+1)*(m+1)), stride: m + 1}

	t.set(n, m, true)
	for j := m - 1; j >= 0; j-- {
		t.set(n, j, pattern[j] == '*' && t.at(n, j+1))
	}

	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if pattern[j] == '*' {
				t.set(i, j, t.at(i, j+1) || t.at(i+1, j))
			} else {
				t.set(i, j, (pattern[j] == '?' || pattern[j] == text[i]) && t.at(i+1, j+1))
			}
		}
	}
	return t
}

// Match reports whether pattern matches the entire text.
// An empty pattern matches only empty text; a pattern of only '*' matches
// anything, including empty text. O(|text| × |pattern|) time and space.
func Match(text, pattern string) bool {
	return solve(text, pattern).at(0, 0)
}

// FindStarts returns every offset s, in ascending order, where pattern
// matches the full suffix text[s:]. One table answers all offsets: row s,
// column 0 of the solved table is exactly Match(text[s:], pattern).
// Returns nil when no suffix matches.
func FindStarts(text, pattern string) []int {
	t := solve(text, pattern)
	var starts []int
	for i := 0; i < len(text); i++ {
		if t.at(i, 0) {
			starts = append(starts, i)
		}
	}
	return starts
}
