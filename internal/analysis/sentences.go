package analysis

import "lexstat/internal/textutil"

// Sentence is one segmented sentence and its alphabetic word count.
type Sentence struct {
	Text  string `json:"text"`
	Words int    `json:"words"`
}

// Sentences splits text on Unicode sentence boundaries. Words counts every
// alphabetic token; stop words and short tokens are included.
func Sentences(text string) []Sentence {
	parts := textutil.SplitSentences(text)
	out := make([]Sentence, 0, len(parts))
	for _, part := range parts {
		words := 0
		for _, segment := range textutil.SplitWords(part) {
			if textutil.IsAlphabetic(segment) {
				words++
			}
		}
		out = append(out, Sentence{Text: part, Words: words})
	}
	return out
}

// LongestSentence returns the first sentence with the most words. It reports
// false when sentences is empty.
func LongestSentence(sentences []Sentence) (Sentence, bool) {
	if len(sentences) == 0 {
		return Sentence{}, false
	}
	longest := sentences[0]
	for _, s := range sentences[1:] {
		if s.Words > longest.Words {
			longest = s
		}
	}
	return longest, true
}
