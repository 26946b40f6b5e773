package logger

import (
	"github.com/reelstack/catalog/pkg/interfaces"
)

// NoopLogger is a logger that does nothing. Tests use it to silence the
// components under test.
type NoopLogger struct{}

// NewNoop creates a new no-op logger.
func NewNoop() interfaces.Logger {
	return &NoopLogger{}
}

// Debug does nothing.
func (n *NoopLogger) Debug(msg string, fields ...interfaces.Field) {}

// Info does nothing.
func (n *NoopLogger) Info(msg string, fields ...interfaces.Field) {}

// Warn does nothing.
func (n *NoopLogger) Warn(msg string, fields ...interfaces.Field) {}

// Error does nothing.
func (n *NoopLogger) Error(msg string, fields ...interfaces.Field) {}

// Fatal does nothing (does not exit).
func (n *NoopLogger) Fatal(msg string, fields ...interfaces.Field) {}

// WithFields returns the same logger.
func (n *NoopLogger) WithFields(fields ...interfaces.Field) interfaces.Logger {
	return n
}
