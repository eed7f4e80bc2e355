// Package logging assembles structured slog loggers used by the lexstat CLI and
// its internal packages.
//
// It owns the console and JSON handlers, level parsing, and output plumbing
// (stderr plus an optional log file), and provides helpers for component
// loggers, standardized field keys, and warnings that always carry an event
// type, a hint, and an impact. NewNop gives tests and wiring code a logger that
// cannot fail.
package logging
