package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.db")

	sw, err := NewStateWatcher(path)
	require.NoError(t, err)
	defer sw.Close()

	require.NoError(t, os.WriteFile(path, []byte("v1"), 0600))

	select {
	case event := <-sw.Events():
		assert.Equal(t, sw.Path(), event.Path)
		assert.NotEmpty(t, event.Operation)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a state file event")
	}
}

func TestStateWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	sw, err := NewStateWatcher(filepath.Join(dir, "state.db"))
	require.NoError(t, err)
	defer sw.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0600))

	select {
	case event := <-sw.Events():
		t.Fatalf("unexpected event for %s", event.Path)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNewStateWatcherMissingDirectory(t *testing.T) {
	_, err := NewStateWatcher(filepath.Join(t.TempDir(), "missing", "state.db"))
	assert.Error(t, err)
}

func TestStateWatcherCloseTwice(t *testing.T) {
	sw, err := NewStateWatcher(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)

	require.NoError(t, sw.Close())
	assert.NotPanics(t, func() {
		assert.NoError(t, sw.Close())
	})

	select {
	case _, ok := <-sw.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("expected the events channel to close")
	}
}
