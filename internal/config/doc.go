// Package config loads, normalizes, and validates cuekit configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from the conventional locations
// (~/.config/cuekit/config.toml, then ./cuekit.toml). The Config type
// centralizes every knob the CLI needs: input encoding, output
// indentation, display styling, and log routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized values and clear validation errors.
package config
