package export

import (
	"fmt"
	"os"
	"strings"

	"aurora/internal/transcription"
)

// textExporter writes one trimmed segment per line.
type textExporter struct{}

func (textExporter) Format() Format      { return FormatText }
func (textExporter) Description() string { return "plain text, one line per segment" }

func (textExporter) Export(segments []transcription.Segment, dest string) error {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(strings.TrimSpace(seg.Text))
		b.WriteString("\n")
	}
	if err := os.WriteFile(dest, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write txt: %w", err)
	}
	return nil
}
