package analysis

import (
	"context"
	"log/slog"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"lexstat/internal/fileutil"
	"lexstat/internal/language"
	"lexstat/internal/logging"
	"lexstat/internal/resources"
	"lexstat/internal/textutil"
)

// Analyzer turns raw text into tokens, frequencies, and summary statistics.
// It is safe for concurrent use. The stop-word set is loaded from the provider
// on first use and then shared read-only.
type Analyzer struct {
	provider resources.Provider
	opts     Options
	entry    language.Entry
	logger   *slog.Logger

	mu        sync.Mutex
	stopWords map[string]struct{}
}

// NewAnalyzer validates opts and returns an analyzer. The provider is not
// contacted until Prepare or the first analysis that needs stop words.
func NewAnalyzer(provider resources.Provider, opts Options, logger *slog.Logger) (*Analyzer, error) {
	entry, err := opts.validate()
	if err != nil {
		return nil, err
	}
	if opts.RemoveStopwords && provider == nil {
		return nil, wrap(ErrInvalidInput, "options", "stop-word removal requires a resource provider", nil)
	}
	if opts.TopN == 0 {
		opts.TopN = DefaultTopN
	}
	opts.ExtraStopwords = append([]string(nil), opts.ExtraStopwords...)
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Analyzer{
		provider: provider,
		opts:     opts,
		entry:    entry,
		logger:   logging.NewComponentLogger(logger, "analysis"),
	}, nil
}

// Options returns the effective options.
func (a *Analyzer) Options() Options {
	opts := a.opts
	opts.ExtraStopwords = append([]string(nil), a.opts.ExtraStopwords...)
	return opts
}

// Language returns the resolved language entry.
func (a *Analyzer) Language() language.Entry {
	return a.entry
}

// Prepare acquires the resources the configured options need. Calling it is
// optional; analysis acquires them lazily otherwise.
func (a *Analyzer) Prepare(ctx context.Context) error {
	if !a.opts.RemoveStopwords {
		return nil
	}
	_, err := a.stopWordSet(ctx)
	return err
}

// stopWordSet loads the stop-word set once. Failures are returned without being
// remembered so a later call can try again.
func (a *Analyzer) stopWordSet(ctx context.Context) (map[string]struct{}, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopWords != nil {
		return a.stopWords, nil
	}

	resource := a.entry.Resource
	if err := a.provider.Ensure(ctx, resources.StopWordsName(resource)); err != nil {
		return nil, wrap(ErrResourceUnavailable, "load stop words", a.entry.Display, err)
	}
	words, err := a.provider.StopWords(ctx, resource)
	if err != nil {
		return nil, wrap(ErrResourceUnavailable, "load stop words", a.entry.Display, err)
	}

	caser := a.caser()
	set := make(map[string]struct{}, len(words)+len(a.opts.ExtraStopwords))
	add := func(word string) {
		word = textutil.Normalize(word)
		if caser != nil {
			word = caser.String(word)
		}
		if word != "" {
			set[word] = struct{}{}
		}
	}
	for _, word := range words {
		add(word)
	}
	for _, word := range a.opts.ExtraStopwords {
		add(word)
	}
	a.stopWords = set
	a.logger.Debug("stop words loaded",
		logging.String(logging.FieldLanguage, resource),
		logging.Int("words", len(set)),
	)
	return set, nil
}

// caser returns a fresh lower-casing caser, or nil when Lowercase is off.
// A cases.Caser keeps state and must not be shared between goroutines.
func (a *Analyzer) caser() *cases.Caser {
	if !a.opts.Lowercase {
		return nil
	}
	c := cases.Lower(a.entry.Tag)
	return &c
}

// Tokenize splits text into normalized alphabetic tokens in input order.
func (a *Analyzer) Tokenize(ctx context.Context, text string) ([]string, error) {
	tokens, _, err := a.tokenize(ctx, text)
	return tokens, err
}

// tokenize also reports the number of word segments seen before filtering.
func (a *Analyzer) tokenize(ctx context.Context, text string) ([]string, int, error) {
	if !utf8.ValidString(text) {
		return nil, 0, wrap(ErrInvalidInput, "tokenize", "", fileutil.ErrInvalidUTF8)
	}
	var stop map[string]struct{}
	if a.opts.RemoveStopwords {
		set, err := a.stopWordSet(ctx)
		if err != nil {
			return nil, 0, err
		}
		stop = set
	}

	segments := textutil.SplitWords(text)
	tokens := make([]string, 0, len(segments))
	caser := a.caser()
	for _, segment := range segments {
		if !textutil.IsAlphabetic(segment) {
			continue
		}
		token := segment
		if caser != nil {
			token = caser.String(token)
		}
		if a.opts.MinTokenLength > 1 && textutil.RuneCount(token) < a.opts.MinTokenLength {
			continue
		}
		if _, ok := stop[token]; ok {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens, len(segments), nil
}
