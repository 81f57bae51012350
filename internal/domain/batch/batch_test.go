package batch

import (
	"fmt"
	"strings"
	"testing"

	"github.com/corey/seqsuite/internal/domain/exact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_MatchesSequentialForAnyWorkerCount(t *testing.T) {
	// batch.Find must equal element-for-element sequential FindAll,
	// regardless of pool size.
	corpora := []string{
		"ABABDABACDABABCABAB",
		"AGCT" + strings.Repeat("GATTACA", 3),
		"",
		"AAAA",
		"GATTACA",
	}
	pattern := "GATTACA"

	var want [][]int
	for _, c := range corpora {
		want = append(want, exact.FindAll(c, pattern))
	}

	for _, workers := range []int{1, 2, 3, 8, 32} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			got, err := Find(corpora, pattern, workers)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestFind_PreservesInputOrder(t *testing.T) {
	// Distinct per-corpus results pin the slot addressing: slot i must
	// hold corpus i's offsets however workers interleave.
	var corpora []string
	for i := 0; i < 50; i++ {
		corpora = append(corpora, strings.Repeat("x", i)+"NEEDLE")
	}
	got, err := Find(corpora, "NEEDLE", 8)
	require.NoError(t, err)
	require.Len(t, got, 50)
	for i, offsets := range got {
		assert.Equal(t, []int{i}, offsets, "corpus %d", i)
	}
}

func TestFind_RejectsBadWorkerCount(t *testing.T) {
	_, err := Find([]string{"abc"}, "b", 0)
	assert.ErrorIs(t, err, ErrInvalidWorkerCount)
	_, err = Find([]string{"abc"}, "b", -3)
	assert.ErrorIs(t, err, ErrInvalidWorkerCount)
}

func TestFind_EmptyCorpora(t *testing.T) {
	got, err := Find(nil, "abc", 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFind_EmptyPattern(t *testing.T) {
	// Same degradation as the sequential matcher: no offsets anywhere.
	got, err := Find([]string{"abc", "def"}, "", 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{nil, nil}, got)
}

func TestFind_MoreWorkersThanJobs(t *testing.T) {
	got, err := Find([]string{"aa"}, "a", 16)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}}, got)
}
