package resources

import (
	"bytes"
	"context"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed stopwords/*
var bundled embed.FS

// Static serves stop-word lists held in memory. It never acquires anything.
type Static struct {
	lists map[string][]string
}

// NewStatic creates a provider over the given language → word list map.
func NewStatic(lists map[string][]string) *Static {
	copied := make(map[string][]string, len(lists))
	for lang, words := range lists {
		copied[strings.ToLower(strings.TrimSpace(lang))] = append([]string(nil), words...)
	}
	return &Static{lists: copied}
}

// NewBundled returns a provider over the stop-word lists compiled into the binary.
func NewBundled() *Static {
	lists := make(map[string][]string)
	entries, err := fs.ReadDir(bundled, "stopwords")
	if err != nil {
		panic("resources: bundled stop words missing: " + err.Error())
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := bundled.ReadFile(path.Join("stopwords", entry.Name()))
		if err != nil {
			panic("resources: read bundled stop words: " + err.Error())
		}
		words, err := ParseWordList(bytes.NewReader(data))
		if err != nil {
			panic("resources: parse bundled stop words: " + err.Error())
		}
		lists[entry.Name()] = words
	}
	return &Static{lists: lists}
}

// Ensure reports whether the named resource is held by the provider.
func (s *Static) Ensure(_ context.Context, name string) error {
	lang, err := ParseName(name)
	if err != nil {
		return err
	}
	if _, ok := s.lists[lang]; !ok {
		return unavailable(lang, "not bundled")
	}
	return nil
}

// StopWords returns a copy of the stop-word list for language.
func (s *Static) StopWords(ctx context.Context, language string) ([]string, error) {
	language = strings.ToLower(strings.TrimSpace(language))
	if err := s.Ensure(ctx, StopWordsName(language)); err != nil {
		return nil, err
	}
	return append([]string(nil), s.lists[language]...), nil
}

// Languages lists the languages the provider holds, sorted.
func (s *Static) Languages() []string {
	out := make([]string, 0, len(s.lists))
	for lang := range s.lists {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Has reports whether the provider holds language.
func (s *Static) Has(language string) bool {
	_, ok := s.lists[strings.ToLower(strings.TrimSpace(language))]
	return ok
}
