// Package extract validates in/out selections and runs ffmpeg stream-copy
// jobs to cut the corresponding sub-clips.
package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/user/inout-extractor-cli/pkg/timeutil"
	"github.com/user/inout-extractor-cli/session"
)

// DefaultOutputDir is where extracted clips are written.
const DefaultOutputDir = "./output"

// InvalidRangeError is returned when the out time is not after the in time.
// Range validity is the only check performed before invoking ffmpeg; the
// selection is never compared against the source's actual duration.
type InvalidRangeError struct {
	In  int
	Out int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("OUT time (%s) must be greater than IN time (%s)",
		timeutil.FormatTime(e.Out), timeutil.FormatTime(e.In))
}

// ToolError is returned when ffmpeg itself fails: non-zero exit, or the
// process could not be started at all (ExitCode -1). Output holds the
// combined stdout/stderr of the run.
type ToolError struct {
	ExitCode int
	Output   string
	Err      error
}

func (e *ToolError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("ffmpeg failed to run: %v", e.Err)
	}
	if line := lastLine(e.Output); line != "" {
		return fmt.Sprintf("ffmpeg exited with code %d: %s", e.ExitCode, line)
	}
	return fmt.Sprintf("ffmpeg exited with code %d", e.ExitCode)
}

func (e *ToolError) Unwrap() error { return e.Err }

// lastLine returns the last non-empty line of ffmpeg output, which is
// usually the actual error message.
func lastLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

// Runner executes the external media tool and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

// Invoker builds and runs ffmpeg extraction jobs. Jobs block the caller
// until ffmpeg exits and carry no timeout.
type Invoker struct {
	// OutputDir is created on first extraction if missing.
	OutputDir string
	// Binary is the ffmpeg executable name; "ffmpeg" when empty.
	Binary string
	// Now supplies the wall-clock timestamp baked into output names.
	Now func() time.Time
	// Runner executes the subprocess; a real exec runner when nil.
	Runner Runner
	// Log receives one event per invocation.
	Log zerolog.Logger
}

// NewInvoker returns an Invoker writing clips to outputDir.
func NewInvoker(outputDir string, logger zerolog.Logger) *Invoker {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	return &Invoker{
		OutputDir: outputDir,
		Log:       logger,
	}
}

// OutputName builds the clip file name for a source path at the given
// wall-clock time: <basename>_clip_<YYYYMMDD_HHMMSS>.mp4. The source
// basename keeps its extension; downstream tooling depends on the exact
// format.
func OutputName(sourcePath string, at time.Time) string {
	return fmt.Sprintf("%s_clip_%s.mp4", filepath.Base(sourcePath), at.Format("20060102_150405"))
}

// Args builds the ffmpeg argument list for a stream-copy trim. Cut points
// are whole seconds and snap to the nearest keyframe since nothing is
// re-encoded.
func Args(input string, inSeconds, outSeconds int, output string) []string {
	return []string{
		"-i", input,
		"-ss", strconv.Itoa(inSeconds),
		"-to", strconv.Itoa(outSeconds),
		"-c", "copy",
		output,
	}
}

// Extract cuts [in, out) from the video at path into the output directory
// and returns the output path. It fails with *InvalidRangeError before
// touching ffmpeg when in >= out, and with *ToolError when ffmpeg fails.
// The source file is not checked for existence; a missing file surfaces as
// a ToolError like any other ffmpeg failure.
func (v *Invoker) Extract(ctx context.Context, path string, in, out int) (string, error) {
	if in >= out {
		return "", &InvalidRangeError{In: in, Out: out}
	}

	if err := os.MkdirAll(v.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	outputPath := filepath.Join(v.OutputDir, OutputName(path, v.now()))
	args := Args(path, in, out, outputPath)

	v.Log.Info().
		Str("source", path).
		Int("in", in).
		Int("out", out).
		Str("output", outputPath).
		Msg("running ffmpeg")

	output, err := v.runner().Run(ctx, v.binary(), args...)
	if err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		toolErr := &ToolError{ExitCode: code, Output: string(output), Err: err}
		v.Log.Error().
			Str("source", path).
			Int("exit_code", code).
			Msg("ffmpeg failed")
		return "", toolErr
	}

	v.Log.Info().Str("output", outputPath).Msg("extraction complete")
	return outputPath, nil
}

// Result is the outcome of one entry in a batch extraction.
type Result struct {
	Path   string
	Output string
	Err    error
}

// ExtractAll runs Extract for every entry, strictly sequentially. One
// entry's failure never halts the rest of the batch; each entry gets its
// own Result.
func (v *Invoker) ExtractAll(ctx context.Context, entries []session.Entry) []Result {
	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		output, err := v.Extract(ctx, e.Path, e.In, e.Out)
		results = append(results, Result{Path: e.Path, Output: output, Err: err})
	}
	return results
}

func (v *Invoker) binary() string {
	if v.Binary == "" {
		return "ffmpeg"
	}
	return v.Binary
}

func (v *Invoker) now() time.Time {
	if v.Now == nil {
		return time.Now()
	}
	return v.Now()
}

func (v *Invoker) runner() Runner {
	if v.Runner == nil {
		return execRunner{}
	}
	return v.Runner
}
