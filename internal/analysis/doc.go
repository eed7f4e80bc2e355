// Package analysis computes word frequency profiles of natural-language text.
//
// An Analyzer tokenizes text on Unicode word boundaries, optionally folds case
// and removes stop words supplied by a resources.Provider, then counts tokens
// and derives summary statistics: Shannon entropy in bits, the population mean
// and standard deviation of the counts, and the mean absolute z-score.
//
// CountFrequencies, TopN, and ComputeStatistics are pure functions and can be
// used on any token sequence. Errors wrap ErrInvalidInput or
// ErrResourceUnavailable and are classified with errors.Is.
package analysis
