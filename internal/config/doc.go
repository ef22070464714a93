// Package config loads, normalizes, and validates purifier configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// PURIFIER_WORKERS. The Config type centralizes every knob the scanner,
// report writer, and logger need.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical format names, and clear validation errors.
package config
