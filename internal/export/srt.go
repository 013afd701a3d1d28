package export

import (
	"fmt"
	"os"
	"strings"

	"aurora/internal/transcription"
)

// srtExporter writes SubRip subtitle files. Every segment becomes a
// numbered block, including segments whose text is empty, so block
// numbering always matches segment indices.
type srtExporter struct{}

func (srtExporter) Format() Format      { return FormatSRT }
func (srtExporter) Description() string { return "SubRip subtitles with timestamps" }

func (srtExporter) Export(segments []transcription.Segment, dest string) error {
	var b strings.Builder
	for i, seg := range segments {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n",
			i+1,
			formatTimestamp(seg.Start),
			formatTimestamp(seg.End),
			strings.TrimSpace(seg.Text),
		)
	}
	if err := os.WriteFile(dest, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}
