package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchLoop(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "plan.yaml", planYAML)

	watcher, err := newFileWatcher(path)
	require.NoError(t, err)
	defer func() { _ = watcher.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, watcher, path, 10*time.Millisecond, slog.New(slog.DiscardHandler), func() {
			calls.Add(1)
		})
	}()

	// a sibling file must not trigger a reload
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte(planYAML), 0o600))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch loop did not stop after cancel")
	}
}

func TestWatchLoopSerializesReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "plan.yaml", planYAML)

	watcher, err := newFileWatcher(path)
	require.NoError(t, err)
	defer func() { _ = watcher.Close() }()

	var inFlight, peak, calls atomic.Int32
	reload := func() {
		n := inFlight.Add(1)
		if n > peak.Load() {
			peak.Store(n)
		}
		time.Sleep(30 * time.Millisecond)
		calls.Add(1)
		inFlight.Add(-1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, watcher, path, time.Millisecond, slog.New(slog.DiscardHandler), reload)
	}()

	for range 6 {
		require.NoError(t, os.WriteFile(path, []byte(planYAML), 0o600))
		time.Sleep(10 * time.Millisecond)
	}
	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, int32(0), inFlight.Load(), "no reload outlives the loop")
	assert.Equal(t, int32(1), peak.Load(), "reloads never overlap")

	settled := calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, calls.Load())
}

func TestWatchLoopStopsOnClose(t *testing.T) {
	path := writeFile(t, t.TempDir(), "plan.yaml", planYAML)
	watcher, err := newFileWatcher(path)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- watchLoop(context.Background(), watcher, path, time.Millisecond, slog.New(slog.DiscardHandler), func() {})
	}()
	require.NoError(t, watcher.Close())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch loop did not stop after close")
	}
}

func TestNewFileWatcherMissingDir(t *testing.T) {
	_, err := newFileWatcher(filepath.Join(t.TempDir(), "gone", "plan.yaml"))
	require.Error(t, err)
}
