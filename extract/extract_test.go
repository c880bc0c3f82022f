package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/user/inout-extractor-cli/session"
)

// fakeRunner records invocations instead of running ffmpeg.
type fakeRunner struct {
	calls  [][]string
	output []byte
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	call := append([]string{name}, args...)
	f.calls = append(f.calls, call)
	return f.output, f.err
}

func newTestInvoker(t *testing.T, runner *fakeRunner) *Invoker {
	t.Helper()
	return &Invoker{
		OutputDir: filepath.Join(t.TempDir(), "output"),
		Now: func() time.Time {
			return time.Date(2025, 2, 27, 16, 10, 0, 0, time.UTC)
		},
		Runner: runner,
		Log:    zerolog.Nop(),
	}
}

func TestExtractRejectsInvalidRangeWithoutRunningTool(t *testing.T) {
	tests := []struct {
		name    string
		in, out int
	}{
		{"in equals out", 10, 10},
		{"in after out", 20, 10},
		{"both zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			inv := newTestInvoker(t, runner)

			_, err := inv.Extract(context.Background(), "/videos/a.mp4", tt.in, tt.out)

			var rangeErr *InvalidRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("expected InvalidRangeError, got %v", err)
			}
			if rangeErr.In != tt.in || rangeErr.Out != tt.out {
				t.Errorf("error carries %d/%d, want %d/%d", rangeErr.In, rangeErr.Out, tt.in, tt.out)
			}
			if len(runner.calls) != 0 {
				t.Errorf("ffmpeg must not run for an invalid range, got %d calls", len(runner.calls))
			}
		})
	}
}

func TestExtractInvokesToolOnceWithExactArgs(t *testing.T) {
	runner := &fakeRunner{}
	inv := newTestInvoker(t, runner)

	outputPath, err := inv.Extract(context.Background(), "/videos/clip.mp4", 5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOutput := filepath.Join(inv.OutputDir, "clip.mp4_clip_20250227_161000.mp4")
	if outputPath != wantOutput {
		t.Errorf("output path = %q, want %q", outputPath, wantOutput)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("expected exactly one ffmpeg invocation, got %d", len(runner.calls))
	}
	want := []string{"ffmpeg", "-i", "/videos/clip.mp4", "-ss", "5", "-to", "10", "-c", "copy", wantOutput}
	got := runner.calls[0]
	if len(got) != len(want) {
		t.Fatalf("argv = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("argv[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractCreatesOutputDir(t *testing.T) {
	runner := &fakeRunner{}
	inv := newTestInvoker(t, runner)

	if _, err := inv.Extract(context.Background(), "/videos/a.mp4", 0, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(inv.OutputDir); err != nil {
		t.Errorf("output dir not created: %v", err)
	}
}

func TestExtractWrapsToolFailure(t *testing.T) {
	runner := &fakeRunner{
		output: []byte("ffmpeg version 6.0\n/videos/a.mp4: No such file or directory\n"),
		err:    errors.New("exit status 1"),
	}
	inv := newTestInvoker(t, runner)

	_, err := inv.Extract(context.Background(), "/videos/a.mp4", 0, 5)

	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected ToolError, got %v", err)
	}
	if toolErr.Output == "" {
		t.Error("ToolError should carry the captured ffmpeg output")
	}
}

func TestToolErrorMessageUsesLastOutputLine(t *testing.T) {
	err := &ToolError{
		ExitCode: 1,
		Output:   "ffmpeg version 6.0\nConversion failed!\n",
	}
	want := "ffmpeg exited with code 1: Conversion failed!"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestOutputName(t *testing.T) {
	at := time.Date(2025, 2, 27, 16, 10, 0, 0, time.UTC)
	got := OutputName("/videos/clip.mp4", at)
	want := "clip.mp4_clip_20250227_161000.mp4"
	if got != want {
		t.Errorf("OutputName = %q, want %q", got, want)
	}

	// Non-mp4 sources keep their extension in the basename too.
	got = OutputName("movie.avi", at)
	want = "movie.avi_clip_20250227_161000.mp4"
	if got != want {
		t.Errorf("OutputName = %q, want %q", got, want)
	}
}

func TestExtractAllContinuesPastFailures(t *testing.T) {
	runner := &fakeRunner{}
	inv := newTestInvoker(t, runner)

	entries := []session.Entry{
		{Path: "/videos/a.mp4", In: 0, Out: 10},
		{Path: "/videos/b.mp4", In: 20, Out: 5}, // invalid range
		{Path: "/videos/c.mp4", In: 3, Out: 8},
	}

	results := inv.ExtractAll(context.Background(), entries)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	var rangeErr *InvalidRangeError
	if !errors.As(results[1].Err, &rangeErr) {
		t.Errorf("entry 1: expected InvalidRangeError, got %v", results[1].Err)
	}
	if results[0].Err != nil {
		t.Errorf("entry 0: unexpected error: %v", results[0].Err)
	}
	if results[2].Err != nil {
		t.Errorf("entry 2: unexpected error: %v", results[2].Err)
	}

	// The invalid entry must not reach ffmpeg; the others must.
	if len(runner.calls) != 2 {
		t.Errorf("expected 2 ffmpeg invocations, got %d", len(runner.calls))
	}
}
