package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the NFC form of text.
func Normalize(text string) string {
	return norm.NFC.String(text)
}

// SplitWords splits text on Unicode word boundaries and returns every segment
// that is not pure whitespace. Punctuation and numbers are returned as their own
// segments; callers filter them. Words joined by an apostrophe are split further
// by splitApostrophes.
func SplitWords(text string) []string {
	if text == "" {
		return nil
	}
	text = Normalize(text)
	var segments []string
	state := -1
	for len(text) > 0 {
		var word string
		word, text, state = uniseg.FirstWordInString(text, state)
		if IsBlank(word) {
			continue
		}
		segments = append(segments, splitApostrophes(word)...)
	}
	return segments
}

// SplitSentences splits text on Unicode sentence boundaries. Sentences are
// trimmed and empty sentences are dropped. A sentence that ends in a known
// abbreviation or a single-letter initial is joined with the next one.
func SplitSentences(text string) []string {
	if text == "" {
		return nil
	}
	text = Normalize(text)
	var sentences []string
	var pending string
	state := -1
	for len(text) > 0 {
		var sentence string
		sentence, text, state = uniseg.FirstSentenceInString(text, state)
		pending += sentence
		if len(text) > 0 && endsWithAbbreviation(pending) {
			continue
		}
		if trimmed := strings.TrimSpace(pending); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
		pending = ""
	}
	return sentences
}

// abbreviations are title and address forms that end in a period without
// ending the sentence. Keys are lower case.
var abbreviations = map[string]struct{}{
	"sr": {}, "sra": {}, "srta": {}, "sres": {}, "dr": {}, "dra": {},
	"ud": {}, "uds": {}, "lic": {}, "ing": {}, "prof": {}, "profa": {},
	"mr": {}, "mrs": {}, "ms": {}, "jr": {}, "st": {}, "mt": {},
	"av": {}, "avda": {}, "vs": {}, "mme": {}, "mlle": {},
}

func endsWithAbbreviation(sentence string) bool {
	trimmed := strings.TrimRightFunc(sentence, unicode.IsSpace)
	if !strings.HasSuffix(trimmed, ".") {
		return false
	}
	trimmed = strings.TrimSuffix(trimmed, ".")
	word := trimmed
	if i := strings.LastIndexFunc(trimmed, func(r rune) bool { return !unicode.IsLetter(r) }); i >= 0 {
		_, size := utf8.DecodeRuneInString(trimmed[i:])
		word = trimmed[i+size:]
	}
	if word == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(word)
	if !unicode.IsUpper(first) {
		return false
	}
	if RuneCount(word) == 1 {
		return true
	}
	_, ok := abbreviations[strings.ToLower(word)]
	return ok
}

// englishClitics are the contraction suffixes split off after an apostrophe,
// as in "it's", "we're" and "I'd".
var englishClitics = map[string]struct{}{
	"s": {}, "t": {}, "re": {}, "ve": {}, "ll": {}, "d": {}, "m": {},
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '\u2019'
}

// splitApostrophes splits a word segment at its inner apostrophes. A trailing
// English clitic stays a separate segment with its apostrophe ("it", "'s";
// "do", "n't"), so it is not alphabetic. Other apostrophes separate letter
// runs ("l'homme" gives "l", "homme").
func splitApostrophes(word string) []string {
	if !strings.ContainsFunc(word, isApostrophe) {
		return []string{word}
	}
	var parts []string
	for {
		i := strings.IndexFunc(word, isApostrophe)
		if i <= 0 {
			break
		}
		_, size := utf8.DecodeRuneInString(word[i:])
		left, apostrophe, rest := word[:i], word[i:i+size], word[i+size:]
		if rest == "" {
			break
		}
		if _, ok := englishClitics[strings.ToLower(rest)]; ok {
			if strings.EqualFold(rest, "t") && RuneCount(left) > 1 && strings.HasSuffix(strings.ToLower(left), "n") {
				return append(parts, left[:len(left)-1], left[len(left)-1:]+apostrophe+rest)
			}
			return append(parts, left, apostrophe+rest)
		}
		parts = append(parts, left)
		word = rest
	}
	return append(parts, word)
}

// IsAlphabetic reports whether s is non-empty and made only of letters.
// Combining marks are accepted when they follow a letter.
func IsAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	prevLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			prevLetter = true
		case unicode.Is(unicode.Mn, r) && prevLetter:
		default:
			return false
		}
	}
	return true
}

// IsBlank reports whether s contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// RuneCount returns the number of runes in s.
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}
