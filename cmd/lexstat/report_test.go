package main

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"lexstat/internal/analysis"
)

func TestPainterStatusNoColor(t *testing.T) {
	got := painter{}.status("Spanish", toneError, "not cached")
	want := fmt.Sprintf("%s%-*s %s", indent, labelWidth, "Spanish:", "[ERROR] not cached")
	if got != want {
		t.Fatalf("status mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestPainterStatusWithColor(t *testing.T) {
	got := painter{color: true}.status("Spanish", toneOK, "cached")
	if !strings.HasPrefix(got, ansiGreen) || !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected green line, got %q", got)
	}
	header := painter{color: true}.header("Statistics")
	if len(header) != 2 || !strings.HasPrefix(header[0], ansiBlue) {
		t.Fatalf("expected blue header, got %q", header)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatal("expected non-file writer to disable color")
	}
}

func TestFormatting(t *testing.T) {
	if got := formatStat(0.918295834); got != "0.9183" {
		t.Fatalf("formatStat = %q", got)
	}
	if got := formatShare(1.0 / 3.0); got != "33.3%" {
		t.Fatalf("formatShare = %q", got)
	}
	if got := pluralWords(1); got != "1 word" {
		t.Fatalf("pluralWords(1) = %q", got)
	}
}

func TestReportEmptyResult(t *testing.T) {
	var b strings.Builder
	report := analysisReport{
		Result:        &analysis.Result{},
		LanguageName:  "Spanish",
		ShowSentences: true,
	}
	if err := report.write(&b, painter{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := b.String()
	requireContains(t, out, "No words found")
	requireContains(t, out, "No sentences found")
	requireContains(t, out, "0.0000")
}

func TestSentencesCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := env.run(t, "Uno dos. Tres cuatro cinco. Seis.", "sentences", "--stdin")
	if err != nil {
		t.Fatalf("sentences: %v", err)
	}
	requireContains(t, out, "1. Uno dos. (2 words)")
	requireContains(t, out, "3. Seis. (1 word)")
	requireContains(t, out, `"Tres cuatro cinco." (3 words)`)
}

func TestTopTableFooter(t *testing.T) {
	top := []analysis.TopEntry{
		{Token: "python", Count: 3, Share: 0.3},
		{Token: "es", Count: 2, Share: 0.2},
	}
	out := renderTopTable(top, 10)
	requireContains(t, out, "python")
	requireContains(t, out, "30.0%")
	requireContains(t, out, "50.0%")
	requireContains(t, strings.ToLower(out), "of 10")
}

func TestTableSpecPadsShortRows(t *testing.T) {
	out := tableSpec{
		Headers: []string{"Code", "Language"},
		Rows:    [][]string{{"es"}, {"en", "English", "extra"}},
	}.render()
	requireContains(t, out, "English")
	requireNotContains(t, out, "extra")
	if (tableSpec{}).render() != "" {
		t.Fatal("expected empty output without headers")
	}
}
