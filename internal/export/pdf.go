package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"aurora/internal/transcription"
)

// pdfExporter renders a transcript as a titled A4 document. Creation
// metadata is pinned so that exporting the same transcript twice yields
// byte-identical files.
type pdfExporter struct{}

func (pdfExporter) Format() Format      { return FormatPDF }
func (pdfExporter) Description() string { return "PDF document with a title heading" }

func (pdfExporter) Export(segments []transcription.Segment, dest string) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(time.Unix(0, 0).UTC())
	doc.SetModificationDate(time.Unix(0, 0).UTC())
	doc.SetTitle(documentTitle(dest), true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.MultiCell(0, 10, documentTitle(dest), "", "L", false)
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 11)
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		doc.MultiCell(0, 6, text, "", "L", false)
		doc.Ln(2)
	}

	if err := doc.OutputFileAndClose(dest); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// documentTitle derives a heading from the destination file name.
func documentTitle(dest string) string {
	base := strings.TrimSuffix(filepath.Base(dest), filepath.Ext(dest))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	return cases.Title(language.Und).String(base)
}
