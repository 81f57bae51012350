package app

import (
	"strings"
	"time"

	"github.com/corey/seqsuite/internal/domain/exact"
	"github.com/corey/seqsuite/internal/domain/fuzzy"
	"github.com/corey/seqsuite/internal/domain/motif"
	"github.com/corey/seqsuite/internal/domain/wildcard"
)

// BenchTiming is one algorithm's timing over the synthetic corpus.
type BenchTiming struct {
	Name    string
	Matches int
	Elapsed time.Duration
}

// Bench times each algorithm once against a synthetic AGCT-repeat corpus of
// roughly size symbols. Relative numbers only — the linear matcher should
// dominate, the table-filling matchers trail in proportion to corpus length.
// Rendering (tables, charts) is the caller's concern.
func Bench(size int) []BenchTiming {
	if size < 4 {
		size = 4
	}
	corpus := strings.Repeat("AGCT", size/4)

	var timings []BenchTiming
	run := func(name string, fn func() int) {
		began := time.Now()
		matches := fn()
		timings = append(timings, BenchTiming{
			Name:    name,
			Matches: matches,
			Elapsed: time.Since(began),
		})
	}

	run("exact", func() int { return len(exact.FindAll(corpus, "GATTACA")) })
	run("wildcard", func() int { return len(wildcard.FindStarts(corpus, "a*b?")) })
	run("motif", func() int { return len(motif.Find(corpus, "GATTACA", 2)) })
	run("fuzzy", func() int { return len(fuzzy.Find(corpus, "GATTACA", 2)) })
	return timings
}
