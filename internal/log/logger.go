// Package log wraps logrus behind a small package-level facade so callers
// don't carry logger instances around.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var std = newLogrus(os.Stderr)

func newLogrus(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Logger is a handle on a configured logrus instance. Most code uses the
// package-level functions; tests construct their own with NewLogger.
type Logger struct {
	*logrus.Logger
}

// Option configures a Logger created by NewLogger.
type Option func(*logrus.Logger)

// WithOutput redirects log output, mainly for tests.
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// NewLogger creates an independent logger with the standard formatting.
func NewLogger(opts ...Option) *Logger {
	l := newLogrus(os.Stderr)
	for _, opt := range opts {
		opt(l)
	}
	return &Logger{Logger: l}
}

// SetDebug toggles debug-level logging on the package logger.
func SetDebug(debug bool) {
	if debug {
		std.SetLevel(logrus.DebugLevel)
	} else {
		std.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput redirects the package logger's output.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Field is one structured key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// WithFields returns an entry carrying the given fields.
func WithFields(fields ...Field) *logrus.Entry {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return std.WithFields(lf)
}

func Info(args ...interface{})                  { std.Info(args...) }
func Infof(format string, args ...interface{})  { std.Infof(format, args...) }
func Warn(args ...interface{})                  { std.Warn(args...) }
func Warnf(format string, args ...interface{})  { std.Warnf(format, args...) }
func Error(args ...interface{})                 { std.Error(args...) }
func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }
func Debug(args ...interface{})                 { std.Debug(args...) }
func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }
