// Package main hosts the lexstat CLI entrypoint and command graph.
//
// The Cobra-based command tree reads text from arguments, files, or stdin,
// runs the frequency analyzer, and prints a report or JSON. It also exposes
// stop-word resource setup and configuration scaffolding. Configuration
// resolution, logger construction, and provider selection are centralized in
// commandContext so subcommands only deal with input and presentation.
//
// Keep this package lean: analysis behavior belongs in internal/analysis and
// resource acquisition in internal/resources.
package main
