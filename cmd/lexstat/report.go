package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"lexstat/internal/analysis"
)

type analysisReport struct {
	Result        *analysis.Result
	LanguageName  string
	StopWords     bool
	ShowSentences bool
}

func (r analysisReport) write(w io.Writer, p painter) error {
	var b strings.Builder
	result := r.Result

	writeLines(&b, p.header("Word frequency"))
	stopWords := "kept"
	if r.StopWords {
		stopWords = "removed"
	}
	writeLines(&b, []string{
		keyValue("Language", r.LanguageName),
		keyValue("Stop words", stopWords),
		keyValue("Raw tokens", strconv.Itoa(result.RawTokenCount)),
		keyValue("Clean tokens", strconv.Itoa(result.Stats.TotalTokens)),
	})
	b.WriteString("\n")

	writeLines(&b, p.header(fmt.Sprintf("Top %d words", len(result.Top))))
	if len(result.Top) == 0 {
		b.WriteString(indent + "No words found\n")
	} else {
		b.WriteString(renderTopTable(result.Top, result.Stats.TotalTokens))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	writeLines(&b, p.header("Statistics"))
	writeLines(&b, statisticsLines(result.Stats))

	if r.ShowSentences {
		b.WriteString("\n")
		writeLines(&b, p.header("Sentences"))
		writeLines(&b, sentenceLines(result.Sentences))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderTopTable(top []analysis.TopEntry, total int) string {
	rows := make([][]string, 0, len(top))
	shown, share := 0, 0.0
	for i, entry := range top {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			entry.Token,
			strconv.Itoa(entry.Count),
			formatShare(entry.Share),
		})
		shown += entry.Count
		share += entry.Share
	}
	return tableSpec{
		Headers: []string{"#", "Word", "Count", "Share"},
		Rows:    rows,
		Aligns:  []columnAlignment{alignRight, alignLeft, alignRight, alignRight},
		Footer:  []string{"", "of " + strconv.Itoa(total), strconv.Itoa(shown), formatShare(share)},
	}.render()
}

func statisticsLines(stats analysis.Statistics) []string {
	return []string{
		keyValue("Total tokens", strconv.Itoa(stats.TotalTokens)),
		keyValue("Vocabulary", strconv.Itoa(stats.VocabSize)),
		keyValue("Entropy (bits)", formatStat(stats.EntropyBits)),
		keyValue("Mean frequency", formatStat(stats.MeanFreq)),
		keyValue("Std frequency", formatStat(stats.StdFreq)),
		keyValue("Mean |z|", formatStat(stats.MeanAbsZ)),
	}
}

func sentenceLines(sentences []analysis.Sentence) []string {
	if len(sentences) == 0 {
		return []string{indent + "No sentences found"}
	}
	lines := make([]string, 0, len(sentences)+2)
	for i, s := range sentences {
		lines = append(lines, fmt.Sprintf("%s%d. %s (%s)", indent, i+1, s.Text, pluralWords(s.Words)))
	}
	if longest, ok := analysis.LongestSentence(sentences); ok {
		lines = append(lines, "", keyValue("Longest sentence", fmt.Sprintf("%q (%s)", longest.Text, pluralWords(longest.Words))))
	}
	return lines
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func formatShare(share float64) string {
	return strconv.FormatFloat(share*100, 'f', 1, 64) + "%"
}

func pluralWords(n int) string {
	if n == 1 {
		return "1 word"
	}
	return strconv.Itoa(n) + " words"
}

func writeLines(b *strings.Builder, lines []string) {
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
}
