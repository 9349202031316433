package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSVGEvent(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write svg", fsnotify.Event{Name: "icons/a.svg", Op: fsnotify.Write}, true},
		{"create svg", fsnotify.Event{Name: "icons/a.svg", Op: fsnotify.Create}, true},
		{"remove svg", fsnotify.Event{Name: "icons/a.svg", Op: fsnotify.Remove}, true},
		{"rename upper case", fsnotify.Event{Name: "icons/A.SVG", Op: fsnotify.Rename}, true},
		{"chmod svg", fsnotify.Event{Name: "icons/a.svg", Op: fsnotify.Chmod}, false},
		{"write other file", fsnotify.Event{Name: "icons/a.png", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSVGEvent(tt.event))
		})
	}
}

func TestGlobBase(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"icons/**/*.svg", "icons"},
		{"assets/icons/*.svg", filepath.Join("assets", "icons")},
		{"*.svg", "."},
		{"/abs/*.svg", filepath.FromSlash("/abs")},
		{"icons/{a,b}/*.svg", "icons"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, globBase(tt.pattern))
		})
	}
}

func TestWatchDirs(t *testing.T) {
	dir := writeIcons(t, map[string]string{
		"a.svg":                  arrowSVG,
		"sub/b.svg":              circleSVG,
		"node_modules/pkg/c.svg": circleSVG,
	})

	t.Run("recursive", func(t *testing.T) {
		dirs, err := watchDirs([]string{dir}, true)
		require.NoError(t, err)
		assert.Equal(t, []string{dir, filepath.Join(dir, "sub")}, dirs)
	})

	t.Run("flat", func(t *testing.T) {
		dirs, err := watchDirs([]string{dir}, false)
		require.NoError(t, err)
		assert.Equal(t, []string{dir}, dirs)
	})

	t.Run("file and pattern", func(t *testing.T) {
		dirs, err := watchDirs([]string{
			filepath.Join(dir, "sub", "b.svg"),
			filepath.Join(dir, "sub") + "/*.svg",
			filepath.Join(dir, "a.svg"),
		}, true)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "sub"), dir}, dirs)
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := watchDirs([]string{filepath.Join(dir, "missing")}, true)
		require.Error(t, err)
	})
}

func TestWatchLoop_RebuildsOnSVGChange(t *testing.T) {
	dir := t.TempDir()

	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()
	require.NoError(t, watcher.Add(dir))

	var rebuilds atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, watcher, 20*time.Millisecond, io.Discard, func() {
			rebuilds.Add(1)
		})
	}()

	// Unrelated files do not trigger a rebuild
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), rebuilds.Load())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.svg"), []byte(arrowSVG), 0644))
	assert.Eventually(t, func() bool { return rebuilds.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch loop did not stop")
	}
}
