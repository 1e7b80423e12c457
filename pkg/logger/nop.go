package logger

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that discards all records.
type nopHandler struct{}

func (n nopHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (n nopHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (n nopHandler) WithAttrs(_ []slog.Attr) slog.Handler          { return n }
func (n nopHandler) WithGroup(_ string) slog.Handler               { return n }

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(nopHandler{})
}
