package main

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"aurora/internal/pipeline"
)

// newProgressSink returns a terminal progress bar when stderr is a TTY
// and a log-backed sink otherwise.
func newProgressSink(logger *slog.Logger) pipeline.ProgressSink {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return pipeline.NewLogSink(logger)
	}
	return newBarSink()
}

type barSink struct {
	bar *progressbar.ProgressBar
}

func newBarSink() *barSink {
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("starting"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return &barSink{bar: bar}
}

func (b *barSink) Progress(percent int, status string) {
	b.bar.Describe(status)
	_ = b.bar.Set(percent)
}
