package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"aurora/internal/config"
	"aurora/internal/export"
	"aurora/internal/extraction"
	"aurora/internal/history"
	"aurora/internal/logging"
	"aurora/internal/media"
	"aurora/internal/notifications"
	"aurora/internal/transcription"
)

// Extractor pulls the audio stream out of a video container.
type Extractor interface {
	Extract(ctx context.Context, source, dest string) error
}

// Transcriber converts an audio file into an ordered transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (transcription.Result, error)
}

// Exporter renders a transcript in a named format.
type Exporter interface {
	Export(format export.Format, segments []transcription.Segment, dest string) error
}

// Recorder persists terminal jobs.
type Recorder interface {
	Record(ctx context.Context, rec *history.Record) error
}

// DestinationResolver supplies the output path once a transcript
// exists. Returning an empty path cancels the job without error.
type DestinationResolver interface {
	ResolveDestination(ctx context.Context, suggested string) (string, error)
}

// ResolverFunc adapts a function to the DestinationResolver interface.
type ResolverFunc func(ctx context.Context, suggested string) (string, error)

func (f ResolverFunc) ResolveDestination(ctx context.Context, suggested string) (string, error) {
	return f(ctx, suggested)
}

// Request describes one transcription run.
type Request struct {
	SourcePath   string
	Format       export.Format
	Sink         ProgressSink
	Destinations DestinationResolver
}

// Outcome is the terminal snapshot of a job.
type Outcome struct {
	Job Job
}

// Deps bundles the orchestrator's collaborators. Nil fields are filled
// with the real implementations.
type Deps struct {
	Extractor   Extractor
	Transcriber Transcriber
	Exporter    Exporter
	History     Recorder
	Notifier    notifications.Service
}

// Orchestrator drives jobs through the pipeline, one at a time.
type Orchestrator struct {
	cfg      *config.Config
	deps     Deps
	logger   *slog.Logger
	running  atomic.Bool
	workLock *flock.Flock
}

// New creates an orchestrator. Missing deps default to the real
// ffmpeg, WhisperX, and export implementations built from cfg.
func New(cfg *config.Config, deps Deps, logger *slog.Logger) *Orchestrator {
	if deps.Extractor == nil {
		deps.Extractor = extraction.New(cfg.FFmpegBinary(), logger)
	}
	if deps.Transcriber == nil {
		deps.Transcriber = transcription.NewService(transcription.Config{
			Binary:   cfg.Whisper.Binary,
			Model:    cfg.Whisper.Model,
			Language: cfg.Whisper.Language,
		}, logger)
	}
	if deps.Exporter == nil {
		deps.Exporter = export.NewRegistry()
	}
	if deps.Notifier == nil {
		deps.Notifier = notifications.NewService(cfg)
	}
	return &Orchestrator{
		cfg:      cfg,
		deps:     deps,
		logger:   logging.NewComponentLogger(logger, "pipeline"),
		workLock: flock.New(cfg.LockFilePath()),
	}
}

// Run starts a job on its own goroutine and returns a channel that
// delivers the terminal Outcome. A second Run while a job is active
// fails immediately with ErrBusy; nothing is queued.
func (o *Orchestrator) Run(ctx context.Context, req Request) (<-chan Outcome, error) {
	if strings.TrimSpace(req.SourcePath) == "" {
		return nil, fmt.Errorf("run: source path required")
	}
	if _, err := os.Stat(req.SourcePath); err != nil {
		return nil, fmt.Errorf("run: stat source: %w", err)
	}
	if req.Format == "" {
		return nil, fmt.Errorf("run: output format required")
	}
	if req.Destinations == nil {
		return nil, fmt.Errorf("run: destination resolver required")
	}

	if !o.running.CompareAndSwap(false, true) {
		return nil, busyError()
	}
	locked, err := o.workLock.TryLock()
	if err != nil {
		o.running.Store(false)
		return nil, fmt.Errorf("run: acquire work lock: %w", err)
	}
	if !locked {
		o.running.Store(false)
		return nil, busyError()
	}

	job := Job{
		ID:         uuid.New(),
		SourcePath: req.SourcePath,
		MediaKind:  media.Classify(req.SourcePath),
		Format:     req.Format,
		State:      StateIdle,
		StartedAt:  time.Now().UTC(),
	}

	outcomes := make(chan Outcome, 1)
	go func() {
		o.execute(ctx, req, &job)
		o.record(&job)
		o.notify(&job)
		// Free the slot before publishing the outcome so a caller
		// reacting to it can start the next job immediately.
		if err := o.workLock.Unlock(); err != nil {
			o.logger.Warn("failed to release work lock", logging.Error(err))
		}
		o.running.Store(false)
		outcomes <- Outcome{Job: job}
	}()
	return outcomes, nil
}

// execute moves the job to a terminal state. The temporary audio
// artifact, when one exists, is removed no matter how the job ends.
func (o *Orchestrator) execute(ctx context.Context, req Request, job *Job) {
	sink := newGuardedSink(req.Sink)
	logger := o.logger.With(logging.String(logging.FieldJobID, job.ID.String()))
	defer func() {
		job.FinishedAt = time.Now().UTC()
	}()

	fail := func(stage Stage, message string, cause error) {
		job.Err = NewError(stage, message, cause)
		job.transition(StateFailed)
		sink.fail("failed")
		logger.Error("job failed",
			logging.String(logging.FieldStage, string(stage)),
			logging.Error(job.Err),
		)
	}
	cancelled := func(cause error) bool {
		if ctx.Err() == nil && !errors.Is(cause, context.Canceled) && !errors.Is(cause, context.DeadlineExceeded) {
			return false
		}
		job.transition(StateCancelled)
		logger.Info("job cancelled")
		return true
	}

	logger.Info("job started",
		logging.String("source", job.SourcePath),
		logging.String("kind", string(job.MediaKind)),
		logging.String("format", job.Format.String()),
	)
	sink.report(progressStart, "starting")

	audioPath := job.SourcePath
	if job.MediaKind == media.KindVideo {
		artifact := filepath.Join(o.cfg.Paths.WorkDir, "audio-"+job.ID.String()+".wav")
		defer func() {
			if err := os.Remove(artifact); err != nil && !errors.Is(err, os.ErrNotExist) {
				logger.Warn("failed to remove audio artifact",
					logging.String("artifact", artifact),
					logging.Error(err),
				)
			}
		}()

		job.transition(StateExtracting)
		sink.report(progressExtracting, "extracting audio")
		if err := o.deps.Extractor.Extract(ctx, job.SourcePath, artifact); err != nil {
			if !cancelled(err) {
				fail(StageExtraction, "extract audio", err)
			}
			return
		}
		sink.report(progressExtracted, "audio extracted")
		audioPath = artifact
	}

	job.transition(StateTranscribing)
	sink.report(progressTranscribing, "transcribing")
	result, err := o.deps.Transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		if !cancelled(err) {
			fail(StageTranscription, "transcribe audio", err)
		}
		return
	}
	sink.report(progressTranscribed, "transcription complete")
	logger.Info("transcription complete", logging.Int("segments", len(result.Segments)))

	job.transition(StateAwaitingDestination)
	dest, err := req.Destinations.ResolveDestination(ctx, o.suggestedDestination(job))
	if err != nil {
		if !cancelled(err) {
			fail(StageExport, "resolve destination", err)
		}
		return
	}
	if strings.TrimSpace(dest) == "" {
		job.transition(StateCancelled)
		logger.Info("job cancelled, no destination chosen")
		return
	}
	job.Destination = dest

	job.transition(StateExporting)
	sink.report(progressExporting, "exporting "+job.Format.String())
	if err := o.deps.Exporter.Export(job.Format, result.Segments, dest); err != nil {
		fail(StageExport, "export transcript", err)
		return
	}

	job.transition(StateSucceeded)
	sink.report(progressDone, "completed")
	logger.Info("job succeeded", logging.String("destination", dest))
}

// suggestedDestination proposes source name + format extension in the
// configured output directory, falling back to the source's directory.
func (o *Orchestrator) suggestedDestination(job *Job) string {
	base := strings.TrimSuffix(filepath.Base(job.SourcePath), filepath.Ext(job.SourcePath))
	dir := strings.TrimSpace(o.cfg.Output.Dir)
	if dir == "" {
		dir = filepath.Dir(job.SourcePath)
	}
	return filepath.Join(dir, base+job.Format.Extension())
}

func (o *Orchestrator) record(job *Job) {
	if o.deps.History == nil {
		return
	}
	rec := history.Record{
		JobID:       job.ID.String(),
		SourcePath:  job.SourcePath,
		MediaKind:   string(job.MediaKind),
		Format:      job.Format.String(),
		Destination: job.Destination,
		State:       string(job.State),
		StartedAt:   job.StartedAt,
		FinishedAt:  job.FinishedAt,
	}
	if job.Err != nil {
		rec.ErrorMessage = job.Err.Error()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := o.deps.History.Record(ctx, &rec); err != nil {
		o.logger.Warn("failed to record job history", logging.Error(err))
	}
}

func (o *Orchestrator) notify(job *Job) {
	if o.deps.Notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	switch job.State {
	case StateSucceeded:
		if err := o.deps.Notifier.NotifyJobCompleted(ctx, job.SourcePath, job.Destination); err != nil {
			o.logger.Warn("failed to send completion notification", logging.Error(err))
		}
	case StateFailed:
		if err := o.deps.Notifier.NotifyJobFailed(ctx, job.SourcePath, job.Err); err != nil {
			o.logger.Warn("failed to send failure notification", logging.Error(err))
		}
	}
}
