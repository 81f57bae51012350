// Package batch fans the linear exact matcher out over independent corpora
// using a fixed-size worker pool. The exact matcher is the only algorithm
// with bounded worst-case cost, which makes it the one safe to run at batch
// volume.
//
// Each job is one (corpus, pattern) scan processed entirely on one worker.
// The compiled automaton is the only shared structure and is read-only, so
// workers need no locks and no cross-worker communication. Results land in
// index-addressed slots: output order always matches input order, whatever
// order workers finish in. There is no mid-batch cancellation; dispatched
// jobs run to completion.
package batch

import (
	"errors"
	"sync"

	"github.com/corey/seqsuite/internal/domain/exact"
)

// DefaultWorkers is the pool size used when the caller has no opinion.
const DefaultWorkers = 4

// ErrInvalidWorkerCount rejects pool sizes below one.
var ErrInvalidWorkerCount = errors.New("batch: worker count must be at least 1")

// Find runs exact.FindAll for pattern over every corpus concurrently on a
// pool of workers goroutines. The pattern automaton is compiled once and
// shared read-only. Element i of the result is exactly
// exact.FindAll(corpora[i], pattern), for any worker count.
//
// workers < 1 returns ErrInvalidWorkerCount. An empty corpora list returns
// an empty result without starting any workers.
func Find(corpora []string, pattern string, workers int) ([][]int, error) {
	if workers < 1 {
		return nil, ErrInvalidWorkerCount
	}
	if len(corpora) == 0 {
		return nil, nil
	}
	if workers > len(corpora) {
		workers = len(corpora)
	}

	automaton := exact.Compile(pattern)
	results := make([][]int, len(corpora))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = automaton.FindAll(corpora[i])
			}
		}()
	}

	for i := range corpora {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results, nil
}
