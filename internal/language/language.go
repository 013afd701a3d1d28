// Package language normalizes user-supplied language selections to the
// 2-letter codes the recognition backend expects.
package language

import "strings"

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 primary (3-letter)
	alt3    string   // ISO 639-2 alternate (e.g. "fre" vs "fra")
	display string   // Human-readable name
	words   []string // Full word forms (e.g. "english")
}

var languages = []entry{
	{"en", "eng", "", "English", []string{"english"}},
	{"es", "spa", "", "Spanish", []string{"spanish"}},
	{"fr", "fra", "fre", "French", []string{"french"}},
	{"de", "deu", "ger", "German", []string{"german"}},
	{"it", "ita", "", "Italian", []string{"italian"}},
	{"pt", "por", "", "Portuguese", []string{"portuguese"}},
	{"ja", "jpn", "", "Japanese", []string{"japanese"}},
	{"ko", "kor", "", "Korean", []string{"korean"}},
	{"zh", "zho", "chi", "Chinese", []string{"chinese"}},
	{"ru", "rus", "", "Russian", []string{"russian"}},
	{"ar", "ara", "", "Arabic", []string{"arabic"}},
	{"hi", "hin", "", "Hindi", []string{"hindi"}},
	{"nl", "nld", "dut", "Dutch", []string{"dutch"}},
	{"pl", "pol", "", "Polish", []string{"polish"}},
	{"bg", "bul", "", "Bulgarian", []string{"bulgarian"}},
	{"sv", "swe", "", "Swedish", []string{"swedish"}},
	{"da", "dan", "", "Danish", []string{"danish"}},
	{"no", "nor", "", "Norwegian", []string{"norwegian"}},
	{"fi", "fin", "", "Finnish", []string{"finnish"}},
}

var (
	byCode map[string]*entry
	byWord map[string]*entry
)

func init() {
	byCode = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode[e.code2] = e
		byCode[e.code3] = e
		if e.alt3 != "" {
			byCode[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(value string) *entry {
	if value == "" {
		return nil
	}
	if e, ok := byCode[value]; ok {
		return e
	}
	if e, ok := byWord[value]; ok {
		return e
	}
	return nil
}

// ToWhisperCode converts a language selection to the 2-letter code passed
// to the recognition backend. Empty input and "auto" return empty string,
// meaning the backend should autodetect. A 2-letter code that is not in
// the table passes through unchanged.
func ToWhisperCode(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || value == "auto" {
		return ""
	}
	if e := lookup(value); e != nil {
		return e.code2
	}
	if len(value) == 2 {
		return value
	}
	return ""
}

// DisplayName returns a human-readable language name for any recognized
// selection. Empty and "auto" render as "Auto"; unrecognized input is
// uppercased.
func DisplayName(value string) string {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" || trimmed == "auto" {
		return "Auto"
	}
	if e := lookup(trimmed); e != nil {
		return e.display
	}
	return strings.ToUpper(trimmed)
}
