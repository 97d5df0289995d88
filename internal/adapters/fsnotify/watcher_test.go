package fsnotify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T) *Watcher {
	t.Helper()
	w, err := NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { w.Stop() })
	return w
}

func waitForPath(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case path := <-ch:
		return path
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change callback")
		return ""
	}
}

func TestWatcher_TranscriptWrite(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t)

	changes := make(chan string, 8)
	require.NoError(t, w.Watch(dir, func(path string) { changes <- path }))

	target := filepath.Join(dir, "ep1.txt.md")
	require.NoError(t, os.WriteFile(target, []byte("Title\nbody"), 0o644))

	assert.Equal(t, target, waitForPath(t, changes))
}

func TestWatcher_KeywordFile(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t)

	changes := make(chan string, 8)
	require.NoError(t, w.Watch(dir, func(path string) { changes <- path }))

	target := filepath.Join(dir, "keywords.json")
	require.NoError(t, os.WriteFile(target, []byte(`{"keywords":[]}`), 0o644))

	assert.Equal(t, target, waitForPath(t, changes))
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t)

	changes := make(chan string, 8)
	require.NoError(t, w.Watch(dir, func(path string) { changes <- path }))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real.txt.md"), []byte("Title\nbody"), 0o644))

	// Only the transcript should come through.
	got := waitForPath(t, changes)
	assert.Equal(t, filepath.Join(dir, "real.txt.md"), got)
	select {
	case extra := <-changes:
		assert.Equal(t, filepath.Join(dir, "real.txt.md"), extra, "no events for non-transcript files")
	default:
	}
}

func TestWatcher_Remove(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "ep1.txt.md")
	require.NoError(t, os.WriteFile(target, []byte("Title\nbody"), 0o644))

	w := newTestWatcher(t)
	changes := make(chan string, 8)
	require.NoError(t, w.Watch(dir, func(path string) { changes <- path }))

	require.NoError(t, os.Remove(target))
	assert.Equal(t, target, waitForPath(t, changes))
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w := newTestWatcher(t)
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}

func TestIsTranscriptPath(t *testing.T) {
	assert.True(t, isTranscriptPath("/a/b/ep1.txt.md"))
	assert.True(t, isTranscriptPath("/a/b/keywords.json"))
	assert.False(t, isTranscriptPath("/a/b/notes.md"))
	assert.False(t, isTranscriptPath("/a/b/episcope.db"))
}
