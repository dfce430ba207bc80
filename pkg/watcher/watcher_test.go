package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewRequiresPaths(t *testing.T) {
	if _, err := New(nil, func() error { return nil }, nil); err == nil {
		t.Fatal("expected error for empty path list")
	}
}

func TestNewMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	if _, err := New([]string{path}, func() error { return nil }, nil); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWatcherRunsCallbackOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	if err := os.WriteFile(path, []byte("Anna\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var runs atomic.Int32
	w, err := New([]string{path}, func() error {
		runs.Add(1)
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	w.debouncePeriod = 50 * time.Millisecond
	w.Start()
	defer w.Stop()

	if err := os.WriteFile(path, []byte("Anna\nErik\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for runs.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("callback did not run after file write")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWatcherDebouncesRapidWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	if err := os.WriteFile(path, []byte("Anna\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var runs atomic.Int32
	w, err := New([]string{path}, func() error {
		runs.Add(1)
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	w.debouncePeriod = 200 * time.Millisecond
	w.Start()
	defer w.Stop()

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("Anna\nErik\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(600 * time.Millisecond)
	if got := runs.Load(); got > 2 {
		t.Errorf("callback ran %d times for a burst of writes, want at most 2", got)
	}
}
