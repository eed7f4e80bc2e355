// Package textutil provides rune-level text helpers shared by the analysis
// pipeline.
//
// The primary use cases are:
//   - Splitting text into word segments on Unicode (UAX #29) word boundaries
//   - Splitting text into sentences on UAX #29 sentence boundaries
//   - Classifying segments as alphabetic words
//
// Input is normalized to NFC before segmentation so that precomposed and
// decomposed accented letters ("á" vs "a" + U+0301) produce identical tokens.
package textutil
