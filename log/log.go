// Package log defines the logging interface used by the pkcs7 engine.
// github.com/sirupsen/logrus.Logger satisfies Logger.
package log

// Discard is a Logger that drops everything. It is the engine default.
var Discard Logger = discardLogger{}

// Logger is implemented by callers and/or 3rd party loggers.
type Logger interface {
	// Debug logs a debug level message.
	Debug(args ...interface{})

	// Debugf logs a debug level message with format.
	Debugf(format string, args ...interface{})

	// Debugln logs a debug level message. Spaces are always added between
	// operands.
	Debugln(args ...interface{})

	// Info logs an info level message.
	Info(args ...interface{})

	// Infof logs an info level message with format.
	Infof(format string, args ...interface{})

	// Infoln logs an info level message. Spaces are always added between
	// operands.
	Infoln(args ...interface{})

	// Warn logs a warn level message.
	Warn(args ...interface{})

	// Warnf logs a warn level message with format.
	Warnf(format string, args ...interface{})

	// Warnln logs a warn level message. Spaces are always added between
	// operands.
	Warnln(args ...interface{})

	// Error logs an error level message.
	Error(args ...interface{})

	// Errorf logs an error level message with format.
	Errorf(format string, args ...interface{})

	// Errorln logs an error level message. Spaces are always added between
	// operands.
	Errorln(args ...interface{})
}

type discardLogger struct{}

func (discardLogger) Debug(args ...interface{})                 {}
func (discardLogger) Debugf(format string, args ...interface{}) {}
func (discardLogger) Debugln(args ...interface{})               {}
func (discardLogger) Info(args ...interface{})                  {}
func (discardLogger) Infof(format string, args ...interface{})  {}
func (discardLogger) Infoln(args ...interface{})                {}
func (discardLogger) Warn(args ...interface{})                  {}
func (discardLogger) Warnf(format string, args ...interface{})  {}
func (discardLogger) Warnln(args ...interface{})                {}
func (discardLogger) Error(args ...interface{})                 {}
func (discardLogger) Errorf(format string, args ...interface{}) {}
func (discardLogger) Errorln(args ...interface{})               {}
