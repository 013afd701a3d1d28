package export

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"

	"aurora/internal/transcription"
)

// docxExporter renders a transcript as a Word document with a heading
// and one paragraph per non-empty segment.
type docxExporter struct{}

func (docxExporter) Format() Format      { return FormatDOCX }
func (docxExporter) Description() string { return "Word document with a title heading" }

func (docxExporter) Export(segments []transcription.Segment, dest string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create docx: %w", err)
	}
	if _, err := doc.AddHeading(documentTitle(dest), 1); err != nil {
		return fmt.Errorf("docx heading: %w", err)
	}
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		doc.AddParagraph(text)
	}
	if err := doc.SaveTo(dest); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}
