package analysis

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"
	"strconv"
)

// FrequencyTable maps tokens to occurrence counts and remembers the order in
// which tokens were first seen. It is read-only after CountFrequencies returns.
type FrequencyTable struct {
	counts map[string]int
	order  []string
	total  int
}

// CountFrequencies builds the frequency table of tokens.
func CountFrequencies(tokens []string) *FrequencyTable {
	t := &FrequencyTable{counts: make(map[string]int)}
	for _, token := range tokens {
		if _, seen := t.counts[token]; !seen {
			t.order = append(t.order, token)
		}
		t.counts[token]++
	}
	t.total = len(tokens)
	return t
}

// Count returns the occurrences of token, zero when absent.
func (t *FrequencyTable) Count(token string) int {
	if t == nil {
		return 0
	}
	return t.counts[token]
}

// Len returns the vocabulary size.
func (t *FrequencyTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Total returns the number of tokens counted; it equals the sum of all counts.
func (t *FrequencyTable) Total() int {
	if t == nil {
		return 0
	}
	return t.total
}

// Tokens returns the distinct tokens in first-seen order.
func (t *FrequencyTable) Tokens() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.order)
}

// All iterates tokens and counts in first-seen order.
func (t *FrequencyTable) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		if t == nil {
			return
		}
		for _, token := range t.order {
			if !yield(token, t.counts[token]) {
				return
			}
		}
	}
}

// Map returns a copy of the table as a plain map.
func (t *FrequencyTable) Map() map[string]int {
	out := make(map[string]int, t.Len())
	for token, count := range t.All() {
		out[token] = count
	}
	return out
}

// MarshalJSON encodes the table as an object whose keys keep first-seen order.
func (t *FrequencyTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for token, count := range t.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(token)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TopEntry is one row of a top-N listing.
type TopEntry struct {
	Token string  `json:"token"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

// TopN returns the n most frequent tokens, most frequent first. Equal counts
// keep first-seen order. The result has min(n, Len()) entries; n <= 0 yields
// none.
func TopN(t *FrequencyTable, n int) []TopEntry {
	if n <= 0 || t.Len() == 0 {
		return []TopEntry{}
	}
	entries := make([]TopEntry, 0, t.Len())
	total := float64(t.Total())
	for token, count := range t.All() {
		entries = append(entries, TopEntry{Token: token, Count: count, Share: float64(count) / total})
	}
	slices.SortStableFunc(entries, func(a, b TopEntry) int {
		return b.Count - a.Count
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
