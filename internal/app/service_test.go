package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/corey/seqsuite/internal/adapters/ahocorasick"
	"github.com/corey/seqsuite/internal/adapters/bbolt"
	"github.com/corey/seqsuite/internal/domain/exact"
	"github.com/corey/seqsuite/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := bbolt.NewStore(filepath.Join(t.TempDir(), "seqsuite.db"))
	require.NoError(t, err)
	svc := NewService(func(patterns []string) ports.MultiScanner {
		return ahocorasick.NewScanner(patterns)
	}, store, nil)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestAnalyzeText_RecordContents(t *testing.T) {
	svc := newTestService(t)
	rec, err := svc.AnalyzeText("run1", "ABABDABACDABABCABAB", []string{"ABABCABAB"}, 2)
	require.NoError(t, err)

	assert.Equal(t, "run1", rec.Label)
	assert.Equal(t, 19, rec.CorpusLength)
	assert.Equal(t, []int{10}, rec.ExactOffsets["ABABCABAB"])
	assert.NotZero(t, rec.Calls)
	assert.NotZero(t, rec.CreatedAt)

	// The wired Aho-Corasick scanner contributes the multi section.
	require.NotEmpty(t, rec.Results[ports.AlgoMulti])
	assert.Equal(t, 10, rec.Results[ports.AlgoMulti][0].Start)
}

func TestAnalyzeText_PersistsUnderLabel(t *testing.T) {
	store, err := bbolt.NewStore(filepath.Join(t.TempDir(), "seqsuite.db"))
	require.NoError(t, err)
	svc := NewService(nil, store, nil)
	t.Cleanup(func() { svc.Close() })

	_, err = svc.AnalyzeText("saved", "AGCT", []string{"GC"}, 0)
	require.NoError(t, err)

	loaded, err := store.LoadReport("saved")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, []int{1}, loaded.ExactOffsets["GC"])
}

func TestAnalyzeText_EmptyLabelSkipsPersistence(t *testing.T) {
	store, err := bbolt.NewStore(filepath.Join(t.TempDir(), "seqsuite.db"))
	require.NoError(t, err)
	svc := NewService(nil, store, nil)
	t.Cleanup(func() { svc.Close() })

	_, err = svc.AnalyzeText("", "AGCT", []string{"GC"}, 0)
	require.NoError(t, err)

	labels, err := store.ListReports()
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestAnalyzeFile_ReadsCorpus(t *testing.T) {
	svc := NewService(nil, nil, nil)
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("GATTACAGATTACA"), 0644))

	rec, err := svc.AnalyzeFile("", path, []string{"GATTACA"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 7}, rec.ExactOffsets["GATTACA"])
}

func TestAnalyzeFile_MissingFile(t *testing.T) {
	svc := NewService(nil, nil, nil)
	_, err := svc.AnalyzeFile("", filepath.Join(t.TempDir(), "nope"), []string{"A"}, 0)
	assert.Error(t, err)
}

func TestBatchFiles_MatchesSequential(t *testing.T) {
	svc := NewService(nil, nil, nil)
	dir := t.TempDir()
	contents := []string{"GATTACA", "xxGATTACAxx", "none here"}
	var paths []string
	for i, c := range contents {
		p := filepath.Join(dir, string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(p, []byte(c), 0644))
		paths = append(paths, p)
	}

	got, err := svc.BatchFiles(paths, "GATTACA", 2)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, c := range contents {
		assert.Equal(t, exact.FindAll(c, "GATTACA"), got[i])
	}
}

func TestWatchFile_RequiresWatcher(t *testing.T) {
	svc := NewService(nil, nil, nil)
	err := svc.WatchFile("x", []string{"A"}, 0, func(*ports.ReportRecord, error) {})
	assert.Error(t, err)
}

func TestBench_CoversEveryAlgorithm(t *testing.T) {
	timings := Bench(400)
	require.Len(t, timings, 4)
	names := make(map[string]bool)
	for _, tm := range timings {
		names[tm.Name] = true
	}
	for _, want := range []string{"exact", "wildcard", "motif", "fuzzy"} {
		assert.True(t, names[want], want)
	}
}
