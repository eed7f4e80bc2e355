package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Statistics summarizes a frequency table.
type Statistics struct {
	TotalTokens int     `json:"total_tokens"`
	VocabSize   int     `json:"vocab_size"`
	EntropyBits float64 `json:"entropy_bits"`
	MeanFreq    float64 `json:"mean_freq"`
	StdFreq     float64 `json:"std_freq"`
	// MeanAbsZ is the mean absolute z-score of the counts. It is zero when
	// every count is equal.
	MeanAbsZ float64 `json:"mean_abs_z"`
}

// ComputeStatistics derives entropy and count dispersion from t. The standard
// deviation is the population one. An empty table yields all zeros.
func ComputeStatistics(t *FrequencyTable) Statistics {
	stats := Statistics{TotalTokens: t.Total(), VocabSize: t.Len()}
	if stats.VocabSize == 0 || stats.TotalTokens == 0 {
		return stats
	}

	counts := make([]float64, 0, stats.VocabSize)
	probs := make([]float64, 0, stats.VocabSize)
	total := float64(stats.TotalTokens)
	for _, count := range t.All() {
		counts = append(counts, float64(count))
		probs = append(probs, float64(count)/total)
	}

	stats.MeanFreq, stats.StdFreq = stat.PopMeanStdDev(counts, nil)
	if stats.VocabSize <= 1 {
		stats.StdFreq = 0
		return stats
	}
	stats.EntropyBits = stat.Entropy(probs) / math.Ln2
	if stats.StdFreq == 0 {
		return stats
	}
	var sum float64
	for _, c := range counts {
		sum += math.Abs(stat.StdScore(c, stats.MeanFreq, stats.StdFreq))
	}
	stats.MeanAbsZ = sum / float64(len(counts))
	return stats
}
