package export

import (
	"fmt"
	"sort"

	"aurora/internal/transcription"
)

// Registry maps formats to their exporters.
type Registry struct {
	exporters map[Format]Exporter
}

// NewRegistry returns a registry with all built-in exporters installed.
func NewRegistry() *Registry {
	r := &Registry{exporters: make(map[Format]Exporter)}
	r.Register(srtExporter{})
	r.Register(textExporter{})
	r.Register(pdfExporter{})
	r.Register(docxExporter{})
	return r
}

// Register installs an exporter, replacing any existing one for the
// same format.
func (r *Registry) Register(e Exporter) {
	r.exporters[e.Format()] = e
}

// Export renders segments to dest using the exporter for format.
func (r *Registry) Export(format Format, segments []transcription.Segment, dest string) error {
	exporter, ok := r.exporters[format]
	if !ok {
		return fmt.Errorf("format %q: %w: choose one of %v", format, ErrBackendUnavailable, r.Available())
	}
	return exporter.Export(segments, dest)
}

// Available lists registered formats in stable order.
func (r *Registry) Available() []Format {
	formats := make([]Format, 0, len(r.exporters))
	for f := range r.exporters {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// Lookup returns the exporter registered for format, if any.
func (r *Registry) Lookup(format Format) (Exporter, bool) {
	e, ok := r.exporters[format]
	return e, ok
}
