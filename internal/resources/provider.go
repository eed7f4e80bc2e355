package resources

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
)

// ErrUnavailable marks a language resource that is missing and could not be
// acquired.
var ErrUnavailable = errors.New("resource unavailable")

const stopWordsPrefix = "stopwords/"

// Provider supplies language resources to the analyzer.
//
// Ensure makes the named resource available, acquiring it if needed. StopWords
// returns the stop-word list for a resource language such as "spanish".
// Both fail with an error wrapping ErrUnavailable when the resource cannot be
// provided.
type Provider interface {
	Ensure(ctx context.Context, name string) error
	StopWords(ctx context.Context, language string) ([]string, error)
}

// StopWordsName returns the resource name of a language's stop-word list.
func StopWordsName(language string) string {
	return stopWordsPrefix + strings.ToLower(strings.TrimSpace(language))
}

// ParseName splits a resource name into its stop-word language.
func ParseName(name string) (string, error) {
	name = strings.TrimSpace(name)
	lang, ok := strings.CutPrefix(name, stopWordsPrefix)
	lang = strings.ToLower(strings.TrimSpace(lang))
	if !ok || lang == "" || strings.ContainsAny(lang, `/\.`) {
		return "", fmt.Errorf("%w: unknown resource %q", ErrUnavailable, name)
	}
	return lang, nil
}

func unavailable(language, reason string) error {
	return fmt.Errorf("%w: stop words for %q: %s", ErrUnavailable, language, reason)
}

// ParseWordList reads one word per line. Blank lines and lines starting with
// '#' are skipped; duplicates keep their first position.
func ParseWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lo.Uniq(words), nil
}
