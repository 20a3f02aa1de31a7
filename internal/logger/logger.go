package logger

import "ChordDHT/internal/domain"

// Field represents a single structured (key, value) log field.
type Field struct {
	Key string
	Val any
}

// Logger is the minimal structured-logging interface required across
// this module's internal packages. Concrete adapters (zap, nop) satisfy
// it; nothing in internal/ depends on zap directly, only on this
// interface, injected per component instead of any process-wide
// logging flag.
type Logger interface {
	Named(name string) Logger
	With(fields ...Field) Logger
	WithNode(n domain.Node) Logger
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// F is a helper to build a Field concisely.
func F(key string, val any) Field { return Field{Key: key, Val: val} }

// FNode serializes a domain.Node into a readable structured field.
func FNode(key string, n *domain.Node) Field {
	if n == nil {
		return Field{Key: key, Val: nil}
	}
	return Field{
		Key: key,
		Val: map[string]any{
			"id":   n.ID.ToHexString(true),
			"addr": n.Addr,
		},
	}
}

// ----------------------------------------------------------------
// NopLogger is a Logger implementation that does nothing. It is the
// zero-configuration default when logging is disabled.
type NopLogger struct{}

func (l *NopLogger) Named(name string) Logger          { return l }
func (l *NopLogger) With(fields ...Field) Logger       { return l }
func (l *NopLogger) WithNode(n domain.Node) Logger     { return l }
func (l *NopLogger) Debug(msg string, fields ...Field) {}
func (l *NopLogger) Info(msg string, fields ...Field)  {}
func (l *NopLogger) Warn(msg string, fields ...Field)  {}
func (l *NopLogger) Error(msg string, fields ...Field) {}
