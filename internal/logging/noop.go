package logging

import (
	"context"
	"log/slog"
)

// NoopHandler is a slog.Handler that reports itself disabled and writes
// nothing.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }
func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler        { return NoopHandler{} }
func (NoopHandler) WithGroup(string) slog.Handler             { return NoopHandler{} }

// NewNop returns a logger backed by NoopHandler, for tests and for callers
// whose real logger failed to construct.
func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}
