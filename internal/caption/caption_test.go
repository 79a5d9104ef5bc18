package caption

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/script-extractor/internal/config"
	"github.com/nguyentantai21042004/script-extractor/internal/logger"
	"github.com/nguyentantai21042004/script-extractor/pkg/executor"
)

type fakeExecutor struct {
	outputs []string
	errs    []error
	calls   [][]string
	onCall  func(dir string, args []string)
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.ExecuteInDir(ctx, "", name, args...)
}

func (f *fakeExecutor) ExecuteInDir(_ context.Context, dir, name string, args ...string) (string, error) {
	i := len(f.calls)
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.onCall != nil {
		f.onCall(dir, args)
	}
	var out string
	var err error
	if i < len(f.outputs) {
		out = f.outputs[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return out, err
}

func newTestFetcher(exec executor.Executor) *implFetcher {
	retries := 2
	f := New(config.CaptionConfig{
		BinaryPath:   "yt-dlp",
		Language:     "en",
		Timeout:      time.Minute,
		Retries:      &retries,
		RetryBackoff: time.Second,
	}, exec, logger.Nop()).(*implFetcher)
	f.wait = func(context.Context, time.Duration) error { return nil }
	return f
}

const testURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func TestParseVideoID(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", false},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://m.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://vimeo.com/12345", "", true},
		{"https://www.youtube.com/watch?v=short", "", true},
		{"not a url", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := ParseVideoID(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVideoID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidURL) {
				t.Errorf("ParseVideoID() error = %v, want ErrInvalidURL", err)
			}
			if got != tt.want {
				t.Errorf("ParseVideoID() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVideoInfo(t *testing.T) {
	exec := &fakeExecutor{outputs: []string{`{"id":"dQw4w9WgXcQ","title":"Never Gonna Give You Up"}`}}
	info, err := newTestFetcher(exec).VideoInfo(context.Background(), testURL)
	if err != nil {
		t.Fatalf("VideoInfo() error = %v", err)
	}

	want := VideoInfo{ID: "dQw4w9WgXcQ", Title: "Never Gonna Give You Up", URL: testURL}
	if info != want {
		t.Errorf("VideoInfo() = %+v, want %+v", info, want)
	}
	if !strings.Contains(strings.Join(exec.calls[0], " "), "--dump-single-json") {
		t.Errorf("unexpected command: %v", exec.calls[0])
	}
}

func TestVideoInfoDefaultsTitle(t *testing.T) {
	exec := &fakeExecutor{outputs: []string{`{"id":"dQw4w9WgXcQ"}`}}
	info, err := newTestFetcher(exec).VideoInfo(context.Background(), testURL)
	if err != nil {
		t.Fatalf("VideoInfo() error = %v", err)
	}
	if info.Title != "unknown_title" {
		t.Errorf("Title = %q, want unknown_title", info.Title)
	}
}

func TestVideoInfoErrors(t *testing.T) {
	tests := []struct {
		name      string
		stderr    string
		want      error
		wantCalls int
	}{
		{"private", "ERROR: [youtube] abc: Private video. Sign in", ErrPrivateVideo, 1},
		{"unavailable", "ERROR: [youtube] abc: Video unavailable", ErrVideoUnavailable, 1},
		{"removed", "ERROR: This video has been removed by the uploader", ErrVideoUnavailable, 1},
		{"region", "ERROR: [youtube] abc: This video is not available in your country", ErrVideoUnavailable, 1},
		{"format not available", "ERROR: [youtube] abc: Requested format is not available", nil, 3},
		{"transient retried", "ERROR: Unable to download webpage: timed out", nil, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			execErr := &executor.Error{Name: "yt-dlp", Stderr: tt.stderr, Err: errors.New("exit status 1")}
			exec := &fakeExecutor{errs: []error{execErr, execErr, execErr}}

			_, err := newTestFetcher(exec).VideoInfo(context.Background(), testURL)
			if err == nil {
				t.Fatal("VideoInfo() should fail")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("VideoInfo() error = %v, want %v", err, tt.want)
			}
			if tt.want == nil && permanent(err) {
				t.Errorf("VideoInfo() error = %v, want a transient error", err)
			}
			if strings.Contains(err.Error(), "fetch video info") {
				t.Errorf("VideoInfo() error = %q, wrapped by the fetcher", err)
			}
			if len(exec.calls) != tt.wantCalls {
				t.Errorf("got %d calls, want %d", len(exec.calls), tt.wantCalls)
			}
		})
	}
}

func TestVideoInfoRetrySucceeds(t *testing.T) {
	execErr := &executor.Error{Name: "yt-dlp", Stderr: "HTTP Error 503", Err: errors.New("exit status 1")}
	exec := &fakeExecutor{
		outputs: []string{"", `{"id":"dQw4w9WgXcQ","title":"t"}`},
		errs:    []error{execErr, nil},
	}

	if _, err := newTestFetcher(exec).VideoInfo(context.Background(), testURL); err != nil {
		t.Fatalf("VideoInfo() error = %v", err)
	}
	if len(exec.calls) != 2 {
		t.Errorf("got %d calls, want 2", len(exec.calls))
	}
}

func TestRetryBackoffStopsOnCancel(t *testing.T) {
	execErr := &executor.Error{Name: "yt-dlp", Stderr: "HTTP Error 503", Err: errors.New("exit status 1")}
	exec := &fakeExecutor{errs: []error{execErr, execErr, execErr}}
	f := newTestFetcher(exec)
	f.cfg.RetryBackoff = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.wait = func(ctx context.Context, d time.Duration) error {
		time.AfterFunc(20*time.Millisecond, cancel)
		return waitBackoff(ctx, d)
	}

	start := time.Now()
	_, err := f.VideoInfo(ctx, testURL)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("VideoInfo() error = %v, want context.Canceled", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("VideoInfo() took %s after cancel", elapsed)
	}
	if len(exec.calls) != 1 {
		t.Errorf("got %d calls, want 1", len(exec.calls))
	}
}

func TestDownload(t *testing.T) {
	dir := t.TempDir()
	info := VideoInfo{ID: "dQw4w9WgXcQ", Title: "t", URL: testURL}

	exec := &fakeExecutor{onCall: func(dir string, _ []string) {
		os.WriteFile(filepath.Join(dir, "dQw4w9WgXcQ.en.vtt"), []byte("WEBVTT\n"), 0644)
	}}

	path, err := newTestFetcher(exec).Download(context.Background(), info, dir)
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if path != filepath.Join(dir, "dQw4w9WgXcQ.en.vtt") {
		t.Errorf("Download() = %v", path)
	}
}

func TestDownloadNoCaptions(t *testing.T) {
	info := VideoInfo{ID: "dQw4w9WgXcQ", Title: "t", URL: testURL}
	_, err := newTestFetcher(&fakeExecutor{}).Download(context.Background(), info, t.TempDir())
	if !errors.Is(err, ErrNoCaptions) {
		t.Errorf("Download() error = %v, want ErrNoCaptions", err)
	}
}

func TestIsVideoID(t *testing.T) {
	if !IsVideoID("dQw4w9WgXcQ") {
		t.Error("IsVideoID(dQw4w9WgXcQ) = false")
	}
	for _, s := range []string{"", "short", "My lecture notes", "dQw4w9WgXc!"} {
		if IsVideoID(s) {
			t.Errorf("IsVideoID(%q) = true", s)
		}
	}
}
