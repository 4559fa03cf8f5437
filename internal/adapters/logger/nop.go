package logger

import "github.com/baditaflorin/go_password_strength/internal/ports"

// NopLogger discards all log messages. Used where log output would pollute
// the CLI's own rendering and in tests.
type NopLogger struct{}

// NewNopLogger creates a logger that discards everything.
func NewNopLogger() ports.Logger { return NopLogger{} }

func (NopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (NopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (NopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (NopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (NopLogger) Close() error                                   { return nil }
