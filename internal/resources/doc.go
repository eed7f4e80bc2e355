// Package resources supplies language resources (stop-word lists) to the
// analysis pipeline through the Provider interface.
//
// Two providers are available: Static serves lists held in memory, including
// the lists compiled into the binary (NewBundled); Catalog serves lists from a
// cache directory and downloads the stop-word archive once when a list is
// missing. Neither provider retries a failed acquisition on its own; callers
// see an error wrapping ErrUnavailable and decide whether to fetch again or
// abort.
package resources
