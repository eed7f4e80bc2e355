// Package language provides unified language code normalization and mapping.
//
// Codes in ISO 639-1, ISO 639-2, English names, and BCP 47 tags all resolve to a
// single Entry carrying the stop-word resource name and the x/text tag used for
// locale-aware case folding.
package language
