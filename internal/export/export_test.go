package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"aurora/internal/transcription"
)

var sampleSegments = []transcription.Segment{
	{Text: " hello", Start: 0.0, End: 1.5},
	{Text: "world ", Start: 1.5, End: 2.75},
}

func TestParseFormat(t *testing.T) {
	for _, value := range []string{"srt", "SRT", " txt ", "pdf", "docx"} {
		if _, err := ParseFormat(value); err != nil {
			t.Errorf("ParseFormat(%q): %v", value, err)
		}
	}
	if _, err := ParseFormat("odt"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFormatExtension(t *testing.T) {
	if got := FormatSRT.Extension(); got != ".srt" {
		t.Fatalf("extension %q", got)
	}
	if got := FormatDOCX.Extension(); got != ".docx" {
		t.Fatalf("extension %q", got)
	}
}

func TestSRTExport(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.srt")
	if err := (srtExporter{}).Export(sampleSegments, dest); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	want := "1\n00:00:00,000 --> 00:00:01,500\nhello\n\n2\n00:00:01,500 --> 00:00:02,750\nworld\n\n"
	if string(data) != want {
		t.Fatalf("srt output:\n%q\nwant:\n%q", data, want)
	}
}

func TestSRTExportKeepsEmptySegments(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.srt")
	segments := []transcription.Segment{
		{Text: "a", Start: 0, End: 1},
		{Text: "   ", Start: 1, End: 2},
		{Text: "b", Start: 2, End: 3},
	}
	if err := (srtExporter{}).Export(segments, dest); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("3\n00:00:02,000")) {
		t.Fatalf("expected third block to keep numbering, got:\n%s", data)
	}
}

func TestTextExport(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.txt")
	if err := (textExporter{}).Export(sampleSegments, dest); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello\nworld\n" {
		t.Fatalf("txt output %q", data)
	}
}

func TestPDFExportDeterministic(t *testing.T) {
	first := filepath.Join(t.TempDir(), "talk.pdf")
	second := filepath.Join(t.TempDir(), "talk.pdf")
	if err := (pdfExporter{}).Export(sampleSegments, first); err != nil {
		t.Fatalf("export: %v", err)
	}
	if err := (pdfExporter{}).Export(sampleSegments, second); err != nil {
		t.Fatalf("export: %v", err)
	}
	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(a, []byte("%PDF")) {
		t.Fatalf("not a pdf: %q", a[:min(8, len(a))])
	}
	if !bytes.Equal(a, b) {
		t.Fatal("expected identical bytes for repeated export")
	}
}

func TestPDFExportEmptyTranscript(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "silence.pdf")
	if err := (pdfExporter{}).Export(nil, dest); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestDOCXExport(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "meeting_notes.docx")
	if err := (docxExporter{}).Export(sampleSegments, dest); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	// docx files are zip archives
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatalf("not a zip archive: %q", data[:min(4, len(data))])
	}
}

func TestDocumentTitle(t *testing.T) {
	if got := documentTitle("/tmp/meeting_notes-2024.pdf"); got != "Meeting Notes 2024" {
		t.Fatalf("title %q", got)
	}
}

func TestRegistryExportUnknownFormat(t *testing.T) {
	r := NewRegistry()
	err := r.Export(Format("odt"), sampleSegments, filepath.Join(t.TempDir(), "x.odt"))
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}

func TestRegistryAvailable(t *testing.T) {
	r := NewRegistry()
	formats := r.Available()
	if len(formats) != 4 {
		t.Fatalf("expected 4 formats, got %v", formats)
	}
	for _, f := range []Format{FormatSRT, FormatText, FormatPDF, FormatDOCX} {
		if _, ok := r.Lookup(f); !ok {
			t.Fatalf("missing exporter for %q", f)
		}
	}
}
