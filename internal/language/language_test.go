package language

import "testing"

func TestToWhisperCode(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"auto", ""},
		{"Auto", ""},
		{"en", "en"},
		{"eng", "en"},
		{"English", "en"},
		{"bulgarian", "bg"},
		{"fre", "fr"},
		{"xx", "xx"},
		{"klingon", ""},
	}
	for _, tc := range cases {
		if got := ToWhisperCode(tc.input); got != tc.want {
			t.Fatalf("ToWhisperCode(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", "Auto"},
		{"auto", "Auto"},
		{"en", "English"},
		{"deu", "German"},
		{"zz", "ZZ"},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.input); got != tc.want {
			t.Fatalf("DisplayName(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
