package language

import (
	"strings"

	textlang "golang.org/x/text/language"
)

// Entry describes one supported language.
type Entry struct {
	Code2    string // ISO 639-1 (2-letter)
	Code3    string // ISO 639-2 primary (3-letter)
	alt3     string // ISO 639-2 alternate (e.g. "fre" vs "fra")
	Display  string // Human-readable name
	Resource string // Stop-word resource name, empty when none is published
	Tag      textlang.Tag
}

type entry struct {
	code2    string
	code3    string
	alt3     string
	display  string
	resource string
}

var languages = []entry{
	{"es", "spa", "", "Spanish", "spanish"},
	{"en", "eng", "", "English", "english"},
	{"pt", "por", "", "Portuguese", "portuguese"},
	{"fr", "fra", "fre", "French", "french"},
	{"it", "ita", "", "Italian", "italian"},
	{"de", "deu", "ger", "German", "german"},
	{"ca", "cat", "", "Catalan", "catalan"},
	{"eu", "eus", "baq", "Basque", "basque"},
	{"nl", "nld", "dut", "Dutch", "dutch"},
	{"sv", "swe", "", "Swedish", "swedish"},
	{"da", "dan", "", "Danish", "danish"},
	{"no", "nor", "", "Norwegian", "norwegian"},
	{"fi", "fin", "", "Finnish", "finnish"},
	{"ro", "ron", "rum", "Romanian", "romanian"},
	{"hu", "hun", "", "Hungarian", "hungarian"},
	{"tr", "tur", "", "Turkish", "turkish"},
	{"ru", "rus", "", "Russian", "russian"},
	{"el", "ell", "gre", "Greek", "greek"},
	{"ar", "ara", "", "Arabic", "arabic"},
	{"pl", "pol", "", "Polish", ""},
	{"ja", "jpn", "", "Japanese", ""},
	{"ko", "kor", "", "Korean", ""},
}

// Index maps built at init time.
var (
	entries []Entry
	byCode2 map[string]*Entry
	byCode3 map[string]*Entry
	byWord  map[string]*Entry
)

func init() {
	entries = make([]Entry, len(languages))
	byCode2 = make(map[string]*Entry, len(languages))
	byCode3 = make(map[string]*Entry, len(languages)*2)
	byWord = make(map[string]*Entry, len(languages))
	for i, l := range languages {
		entries[i] = Entry{
			Code2:    l.code2,
			Code3:    l.code3,
			alt3:     l.alt3,
			Display:  l.display,
			Resource: l.resource,
			Tag:      textlang.Make(l.code2),
		}
		e := &entries[i]
		byCode2[e.Code2] = e
		byCode3[e.Code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		byWord[strings.ToLower(e.Display)] = e
	}
}

func lookup(code string) *Entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	// BCP 47 tags such as "es-MX" or "pt_BR" resolve through their base language.
	tag, err := textlang.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return nil
	}
	base, _ := tag.Base()
	if e, ok := byCode2[base.String()]; ok {
		return e
	}
	return nil
}

// Resolve returns the language entry for an ISO code, English name, or BCP 47 tag.
func Resolve(code string) (Entry, bool) {
	if e := lookup(code); e != nil {
		return *e, true
	}
	return Entry{}, false
}

// All returns every supported language in table order.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// ToISO2 converts any recognized language code or word to ISO 639-1 (2-letter).
// Returns empty string for unrecognized input.
// If the input is already a 2-letter code (even if unknown), it passes through.
func ToISO2(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if e := lookup(code); e != nil {
		return e.Code2
	}
	if len(code) == 2 {
		return code
	}
	return ""
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.Display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeList deduplicates and normalizes a list of language codes to ISO 639-1.
func NormalizeList(languages []string) []string {
	if len(languages) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(languages))
	seen := make(map[string]struct{}, len(languages))
	for _, lang := range languages {
		trimmed := strings.ToLower(strings.TrimSpace(lang))
		if trimmed == "" {
			continue
		}
		if mapped := ToISO2(trimmed); mapped != "" {
			trimmed = mapped
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}
