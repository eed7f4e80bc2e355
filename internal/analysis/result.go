package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"lexstat/internal/logging"
)

// Result is the outcome of one analysis run.
type Result struct {
	RunID         string          `json:"run_id"`
	Language      string          `json:"language"`
	Tokens        []string        `json:"tokens"`
	RawTokenCount int             `json:"raw_token_count"`
	Frequencies   *FrequencyTable `json:"frequencies"`
	Top           []TopEntry      `json:"top"`
	Stats         Statistics      `json:"stats"`
	Sentences     []Sentence      `json:"sentences"`
}

// Analyze runs the full pipeline on text: tokenize, count, rank, and
// summarize. Sentences are segmented from the raw text.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*Result, error) {
	runID := uuid.NewString()
	logger := a.logger.With(logging.String(logging.FieldRunID, runID))
	started := time.Now()

	tokens, raw, err := a.tokenize(ctx, text)
	if err != nil {
		logger.Debug("analysis failed", logging.Error(err))
		return nil, err
	}
	table := CountFrequencies(tokens)
	result := &Result{
		RunID:         runID,
		Language:      a.entry.Code2,
		Tokens:        tokens,
		RawTokenCount: raw,
		Frequencies:   table,
		Top:           TopN(table, a.opts.TopN),
		Stats:         ComputeStatistics(table),
		Sentences:     Sentences(text),
	}
	logger.Debug("analysis complete",
		logging.String(logging.FieldLanguage, result.Language),
		logging.Int("raw_tokens", raw),
		logging.Int("tokens", result.Stats.TotalTokens),
		logging.Int("vocab", result.Stats.VocabSize),
		logging.Int("sentences", len(result.Sentences)),
		logging.Duration("elapsed", time.Since(started)),
	)
	return result, nil
}

// AnalyzeDocuments analyzes docs as a single text joined by spaces.
func (a *Analyzer) AnalyzeDocuments(ctx context.Context, docs []string) (*Result, error) {
	return a.Analyze(ctx, strings.Join(docs, " "))
}
