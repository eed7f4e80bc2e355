package analysis

import (
	"strconv"
	"strings"

	"lexstat/internal/language"
)

// DefaultTopN is the number of top words reported when Options.TopN is zero.
const DefaultTopN = 5

// Options configures an Analyzer.
type Options struct {
	// Language accepts ISO 639 codes, English names, or BCP 47 tags.
	Language        string
	Lowercase       bool
	RemoveStopwords bool
	// ExtraStopwords are removed in addition to the language list. They are
	// case-folded like tokens when Lowercase is set.
	ExtraStopwords []string
	// MinTokenLength drops tokens with fewer runes. Values below 2 keep everything.
	MinTokenLength int
	// TopN is the number of words Analyze reports; zero means DefaultTopN.
	TopN int
}

// DefaultOptions returns the Spanish defaults:
// lowercase on, stop words kept, top five words.
func DefaultOptions() Options {
	return Options{
		Language:  "es",
		Lowercase: true,
		TopN:      DefaultTopN,
	}
}

func (o Options) validate() (language.Entry, error) {
	lang := strings.TrimSpace(o.Language)
	if lang == "" {
		return language.Entry{}, wrap(ErrInvalidInput, "options", "language is required", nil)
	}
	entry, ok := language.Resolve(lang)
	if !ok {
		return language.Entry{}, wrap(ErrInvalidInput, "options", "unknown language "+strconv.Quote(lang), nil)
	}
	if o.TopN < 0 {
		return language.Entry{}, wrap(ErrInvalidInput, "options", "top n must be >= 0", nil)
	}
	if o.MinTokenLength < 0 {
		return language.Entry{}, wrap(ErrInvalidInput, "options", "min token length must be >= 0", nil)
	}
	if o.RemoveStopwords && entry.Resource == "" {
		return language.Entry{}, wrap(ErrInvalidInput, "options", "no stop-word list exists for "+entry.Display, nil)
	}
	return entry, nil
}
