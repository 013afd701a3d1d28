// Package extraction produces temporary mono audio artifacts from video
// containers by invoking ffmpeg.
package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"aurora/internal/logging"
)

// CommandRunner abstracts process execution for testability.
type CommandRunner func(ctx context.Context, name string, args ...string) error

// Extractor wraps ffmpeg audio extraction. The output is a mono 16kHz
// PCM WAV file suitable for the recognition backend.
type Extractor struct {
	ffmpegBinary string
	runner       CommandRunner
	logger       *slog.Logger
}

// New creates an extractor using the given ffmpeg binary name.
func New(ffmpegBinary string, logger *slog.Logger) *Extractor {
	if strings.TrimSpace(ffmpegBinary) == "" {
		ffmpegBinary = "ffmpeg"
	}
	return &Extractor{
		ffmpegBinary: ffmpegBinary,
		logger:       logging.NewComponentLogger(logger, "extraction"),
	}
}

// WithCommandRunner sets a custom command runner (for testing).
func (e *Extractor) WithCommandRunner(runner CommandRunner) {
	e.runner = runner
}

// Extract writes the full audio stream of source to dest. A failed or
// partial run never leaves a file at dest: the orchestrator may treat
// any existing dest as a complete artifact.
func (e *Extractor) Extract(ctx context.Context, source, dest string) error {
	if strings.TrimSpace(source) == "" {
		return fmt.Errorf("extract audio: source path required")
	}
	if strings.TrimSpace(dest) == "" {
		return fmt.Errorf("extract audio: destination path required")
	}
	if _, err := os.Stat(source); err != nil {
		return fmt.Errorf("extract audio: stat source: %w", err)
	}

	args := buildFFmpegArgs(source, dest)
	e.logger.Debug("running ffmpeg", logging.String("source", source), logging.String("dest", dest))

	if err := e.run(ctx, e.ffmpegBinary, args...); err != nil {
		_ = os.Remove(dest)
		return fmt.Errorf("ffmpeg extract: %w", err)
	}
	if _, err := os.Stat(dest); err != nil {
		return fmt.Errorf("ffmpeg extract: output file missing: %w", err)
	}
	return nil
}

func (e *Extractor) run(ctx context.Context, name string, args ...string) error {
	if e.runner != nil {
		return e.runner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

func buildFFmpegArgs(source, dest string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-nostdin",
		"-i", source,
		"-vn",
		"-sn",
		"-dn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		dest,
	}
}
