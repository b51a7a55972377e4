package obslog

import "log/slog"

// SlogAdapter adapts a *slog.Logger to the Logger interface, for callers
// who want structured output without writing their own adapter.
type SlogAdapter struct {
	L *slog.Logger
}

// NewSlogAdapter wraps l, or slog.Default() if l is nil.
func NewSlogAdapter(l *slog.Logger) SlogAdapter {
	if l == nil {
		l = slog.Default()
	}
	return SlogAdapter{L: l}
}

func (a SlogAdapter) Debug(msg string, kv ...any) { a.L.Debug(msg, kv...) }
func (a SlogAdapter) Info(msg string, kv ...any)  { a.L.Info(msg, kv...) }
func (a SlogAdapter) Warn(msg string, kv ...any)  { a.L.Warn(msg, kv...) }
func (a SlogAdapter) Error(msg string, kv ...any) { a.L.Error(msg, kv...) }
