package pipeline

import "log/slog"

// Progress percentages emitted by the orchestrator.
const (
	progressStart        = 10
	progressExtracting   = 10
	progressExtracted    = 30
	progressTranscribing = 40
	progressTranscribed  = 90
	progressExporting    = 95
	progressDone         = 100
)

// ProgressSink receives job progress updates. Percentages are
// monotonically non-decreasing for the lifetime of a job, with one
// exception: a failing job emits a final 0.
type ProgressSink interface {
	Progress(percent int, status string)
}

// SinkFunc adapts a function to the ProgressSink interface.
type SinkFunc func(percent int, status string)

func (f SinkFunc) Progress(percent int, status string) {
	f(percent, status)
}

// NewLogSink returns a sink that writes progress to the logger.
func NewLogSink(logger *slog.Logger) ProgressSink {
	return SinkFunc(func(percent int, status string) {
		if logger == nil {
			return
		}
		logger.Info("progress", slog.Int("percent", percent), slog.String("status", status))
	})
}

// guardedSink enforces the monotonic contract in front of a
// caller-supplied sink. It drops regressing percentages and emits the
// reset-to-zero exactly once.
type guardedSink struct {
	sink   ProgressSink
	last   int
	failed bool
}

func newGuardedSink(sink ProgressSink) *guardedSink {
	return &guardedSink{sink: sink}
}

func (g *guardedSink) report(percent int, status string) {
	if g.failed || percent < g.last {
		return
	}
	g.last = percent
	if g.sink != nil {
		g.sink.Progress(percent, status)
	}
}

func (g *guardedSink) fail(status string) {
	if g.failed {
		return
	}
	g.failed = true
	if g.sink != nil {
		g.sink.Progress(0, status)
	}
}
