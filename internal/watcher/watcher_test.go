package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/nguyentantai21042004/script-extractor/internal/logger"
)

func TestIsCaptionFile(t *testing.T) {
	tests := map[string]bool{
		"a.vtt":        true,
		"dir/b.en.VTT": true,
		"c.srt":        false,
		"d.mp4":        false,
		"vtt":          false,
	}
	for path, want := range tests {
		if got := isCaptionFile(path); got != want {
			t.Errorf("isCaptionFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcherDispatchesCaptionFiles(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var handled []string
	done := make(chan struct{}, 4)
	handler := func(_ context.Context, path string) error {
		mu.Lock()
		handled = append(handled, filepath.Base(path))
		mu.Unlock()
		done <- struct{}{}
		return errors.New("handler errors are logged")
	}

	w, err := New(dir, handler, logger.Nop(), 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w.(*implWatcher).settle = time.Millisecond
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error, 1)
	go func() { stopped <- w.Start(ctx) }()

	for _, name := range []string{"skip.txt", "video.en.vtt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("WEBVTT\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	cancel()
	if err := <-stopped; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() = %v, want context.Canceled", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(handled) != 1 || handled[0] != "video.en.vtt" {
		t.Errorf("handled = %v, want [video.en.vtt]", handled)
	}
}

func TestNewMissingDir(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing"), nil, logger.Nop(), 1); err == nil {
		t.Error("New() on missing dir succeeded")
	}
}
