// Package logging assembles the structured slog loggers used by the cuekit
// CLI.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// provides a no-op logger for tests and wiring code that cannot fail. The
// cue core itself never logs; diagnostics are part of its return values.
//
// Prefer these constructors over hand-rolled slog setup so every command
// emits log lines with the same shape.
package logging
