package transcription

import "strings"

// Segment is one unit of recognized speech with timing in seconds.
// Segments arrive from the recognizer in non-decreasing start order and
// must be kept in that order; exporters depend on it.
type Segment struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Result is the ordered transcript produced by one recognition run.
// It is immutable once returned by the service.
type Result struct {
	Segments []Segment
	Language string
}

// PlainText joins the trimmed non-empty segment texts with spaces.
func (r Result) PlainText() string {
	parts := make([]string, 0, len(r.Segments))
	for _, seg := range r.Segments {
		if text := strings.TrimSpace(seg.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
