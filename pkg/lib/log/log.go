// Package log defines the logging contract of the reminder-sink SDK.
//
// Every SDK operation logs through a [Logger]. The default is [Noop], which
// discards everything, so the SDK stays silent unless the embedding
// application wires its own logger in.
//
// To plug in your application's logger, implement [Logger] on top of it:
//
//	type appLogger struct{}
//
//	func (l appLogger) Infof(format string, args ...any)    { slog.Info(fmt.Sprintf(format, args...)) }
//	func (l appLogger) Warningf(format string, args ...any) { slog.Warn(fmt.Sprintf(format, args...)) }
//	func (l appLogger) Errorf(format string, args ...any)   { slog.Error(fmt.Sprintf(format, args...)) }
//	func (l appLogger) Debugf(format string, args ...any)   { slog.Debug(fmt.Sprintf(format, args...)) }
//	// ... remaining methods
//
// Script stderr and per-script timings are logged at debug level, so a debug
// capable logger is the most useful one while developing reminder scripts.
package log

import "github.com/slok/reminder-sink/internal/log"

// Logger is the interface SDK loggers must implement.
//
// Structured fields travel through [Kv] values and contexts. Implementations
// that only care about the text can return themselves from the With* methods
// and the parent context from SetValuesOnCtx.
type Logger = log.Logger

// Kv holds structured logging key-value pairs.
type Kv = log.Kv

// Noop discards all log output. It is the default when no logger is
// configured.
var Noop = log.Noop
