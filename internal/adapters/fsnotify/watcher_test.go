package fsnotify

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWatch_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	writeFile(t, path, "AGCT")

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	var fired atomic.Int32
	require.NoError(t, w.Watch(path, func(string) { fired.Add(1) }))

	time.Sleep(50 * time.Millisecond)
	writeFile(t, path, "AGCTAGCT")

	assert.Eventually(t, func() bool { return fired.Load() >= 1 },
		2*time.Second, 20*time.Millisecond)
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	writeFile(t, path, "AGCT")

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	var fired atomic.Int32
	require.NoError(t, w.Watch(path, func(string) { fired.Add(1) }))

	time.Sleep(50 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "other.txt"), "noise")
	time.Sleep(300 * time.Millisecond)

	assert.Zero(t, fired.Load())
}

func TestWatch_MissingFile(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	err = w.Watch(filepath.Join(t.TempDir(), "nope.txt"), func(string) {})
	assert.Error(t, err)
}

func TestWatch_DirectoryRejected(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	assert.Error(t, w.Watch(t.TempDir(), func(string) {}))
}

func TestStop_SafeToCallTwice(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}
