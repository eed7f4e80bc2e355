package analysis

import (
	"errors"
	"fmt"
	"strings"

	"lexstat/internal/resources"
)

var (
	// ErrInvalidInput marks malformed text or invalid options. No partial
	// result accompanies it.
	ErrInvalidInput = errors.New("invalid input")
	// ErrResourceUnavailable marks a language resource that is missing and
	// could not be acquired. It is the same sentinel the resource providers
	// return, so errors.Is matches either name.
	ErrResourceUnavailable = resources.ErrUnavailable
)

// wrap tags err with marker and an operation description, keeping both
// matchable with errors.Is.
func wrap(marker error, operation, message string, err error) error {
	detail := strings.TrimSpace(operation)
	if message = strings.TrimSpace(message); message != "" {
		if detail != "" {
			detail += ": "
		}
		detail += message
	}
	if err != nil {
		if errors.Is(err, marker) {
			return fmt.Errorf("%s: %w", detail, err)
		}
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}
