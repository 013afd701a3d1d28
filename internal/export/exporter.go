// Package export renders transcripts into user-facing document formats.
package export

import (
	"errors"
	"fmt"
	"strings"

	"aurora/internal/transcription"
)

// ErrBackendUnavailable indicates that no exporter is registered for the
// requested format.
var ErrBackendUnavailable = errors.New("export backend unavailable")

// Format identifies a transcript output format.
type Format string

const (
	FormatSRT  Format = "srt"
	FormatText Format = "txt"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatSRT:
		return FormatSRT, nil
	case FormatText:
		return FormatText, nil
	case FormatPDF:
		return FormatPDF, nil
	case FormatDOCX:
		return FormatDOCX, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: srt, txt, pdf, docx)", value)
	}
}

// Extension returns the file extension for the format, dot included.
func (f Format) Extension() string {
	return "." + string(f)
}

func (f Format) String() string {
	return string(f)
}

// Exporter writes an ordered transcript to a destination file.
type Exporter interface {
	// Export renders segments to dest. Implementations write the
	// complete document or return an error; a failed export may leave
	// a partial file behind, callers decide whether to keep it.
	Export(segments []transcription.Segment, dest string) error
	// Format reports which format this exporter produces.
	Format() Format
	// Description is a one-line human summary for listings.
	Description() string
}
