// Package config loads, normalizes, and validates lexstat configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// LEXSTAT_RESOURCE_DIR and LEXSTAT_LOG_LEVEL. The Config type holds the default
// analyzer options, the stop-word resource source, and log settings.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical enum values, and clear validation errors.
package config
