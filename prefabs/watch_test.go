package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// nextEvent polls w until a file name arrives or timeout passes.
func nextEvent(t *testing.T, w *Watcher, timeout time.Duration) (string, bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if name, ok := w.Poll(); ok {
			return name, true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return "", false
}

func newTestWatcher(t *testing.T) (*Watcher, string) {
	t.Helper()
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w, dir
}

func TestWatcherReportsBaseName(t *testing.T) {
	w, dir := newTestWatcher(t)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write txt: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, TuningFile), []byte("player: {}\n"), 0o644); err != nil {
		t.Fatalf("write tuning: %v", err)
	}

	name, ok := nextEvent(t, w, 2*time.Second)
	if !ok {
		t.Fatalf("expected a change event")
	}
	if name != TuningFile {
		t.Fatalf("expected %q, got %q", TuningFile, name)
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	w, dir := newTestWatcher(t)
	path := filepath.Join(dir, LevelFile)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("name: burst\n"), 0o644); err != nil {
			t.Fatalf("write level: %v", err)
		}
	}

	if _, ok := nextEvent(t, w, 2*time.Second); !ok {
		t.Fatalf("expected a change event")
	}
	if name, ok := nextEvent(t, w, 50*time.Millisecond); ok {
		t.Fatalf("expected the burst to collapse into one event, got another %q", name)
	}
}

func TestWatcherPollAfterClose(t *testing.T) {
	w, _ := newTestWatcher(t)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, ok := w.Poll(); ok {
		t.Fatalf("expected no events after Close")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	var nilWatcher *Watcher
	if _, ok := nilWatcher.Poll(); ok {
		t.Fatalf("nil watcher reported an event")
	}
}
