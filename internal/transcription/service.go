// Package transcription wraps the WhisperX speech recognition CLI and
// parses its JSON output into ordered timed segments.
package transcription

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"aurora/internal/logging"
)

// CommandRunner abstracts process execution for testability.
type CommandRunner func(ctx context.Context, name string, args ...string) error

// Service provides transcription via an external WhisperX invocation.
// One Service may be reused across sequential jobs; it holds no
// per-job state.
type Service struct {
	cfg    Config
	runner CommandRunner
	logger *slog.Logger
}

// NewService creates a transcription service with the given configuration.
func NewService(cfg Config, logger *slog.Logger) *Service {
	if cfg.Binary == "" {
		cfg.Binary = DefaultBinary
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &Service{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "transcription"),
	}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner CommandRunner) {
	s.runner = runner
}

// Model returns the configured model name for logging.
func (s *Service) Model() string {
	return s.cfg.Model
}

// Transcribe runs recognition on an audio file and returns its ordered
// segments. The call blocks for the duration of the external process;
// it cannot be interrupted mid-run except through ctx.
func (s *Service) Transcribe(ctx context.Context, audioPath string) (Result, error) {
	if strings.TrimSpace(audioPath) == "" {
		return Result{}, fmt.Errorf("transcribe: audio path required")
	}
	if _, err := os.Stat(audioPath); err != nil {
		return Result{}, fmt.Errorf("transcribe: stat audio: %w", err)
	}

	outputDir, err := os.MkdirTemp("", "aurora-whisper-*")
	if err != nil {
		return Result{}, fmt.Errorf("transcribe: create output dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(outputDir); err != nil {
			s.logger.Warn("failed to remove whisper output dir", logging.Error(err))
		}
	}()

	args := s.buildArgs(audioPath, outputDir)
	s.logger.Debug("running whisperx",
		logging.String("audio", audioPath),
		logging.String("model", s.cfg.Model),
	)
	if err := s.run(ctx, s.cfg.Binary, args...); err != nil {
		return Result{}, fmt.Errorf("whisperx: %w", err)
	}

	baseName := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	jsonPath := filepath.Join(outputDir, baseName+".json")
	segments, err := loadSegments(jsonPath)
	if err != nil {
		return Result{}, fmt.Errorf("whisperx output: %w", err)
	}

	return Result{Segments: segments, Language: s.cfg.Language}, nil
}

func (s *Service) run(ctx context.Context, name string, args ...string) error {
	if s.runner != nil {
		return s.runner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// buildArgs constructs the launcher arguments for WhisperX.
func (s *Service) buildArgs(audioPath, outputDir string) []string {
	args := []string{
		"--index-url", pypiIndexURL,
		whisperxEntry,
		audioPath,
		"--model", s.cfg.Model,
		"--batch_size", batchSize,
		"--output_dir", outputDir,
		"--output_format", outputFormat,
		"--device", device,
		"--compute_type", computeType,
	}
	if lang := strings.TrimSpace(s.cfg.Language); lang != "" {
		args = append(args, "--language", lang)
	}
	return args
}

type whisperPayload struct {
	Segments []Segment `json:"segments"`
}

// loadSegments parses segments from a WhisperX JSON file, preserving
// the recognizer's order.
func loadSegments(jsonPath string) ([]Segment, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, err
	}
	var payload whisperPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse whisperx json: %w", err)
	}
	return payload.Segments, nil
}
