// Package logging adapts go-kit/log to the structured Logger interface used by
// the client and its HTTP transport.
package logging

import (
	"io"
	"sort"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Logger writes logfmt lines through a go-kit logger.
type Logger struct {
	logger log.Logger
}

// New returns a Logger writing to w. Debug lines are dropped unless verbose
// is set.
func New(w io.Writer, verbose bool) *Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	if verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	return &Logger{logger: logger}
}

// Wrap adapts an existing go-kit logger without adding a filter or timestamp.
func Wrap(logger log.Logger) *Logger {
	return &Logger{logger: logger}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	_ = level.Debug(l.logger).Log(keyvals(msg, fields)...)
}

// Info logs at info level.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	_ = level.Info(l.logger).Log(keyvals(msg, fields)...)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	_ = level.Warn(l.logger).Log(keyvals(msg, fields)...)
}

// Error logs at error level.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	_ = level.Error(l.logger).Log(keyvals(msg, fields)...)
}

// keyvals flattens fields in key order so output is stable.
func keyvals(msg string, fields map[string]interface{}) []interface{} {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	out := make([]interface{}, 0, 2+2*len(keys))
	out = append(out, "msg", msg)

	for _, key := range keys {
		out = append(out, key, fields[key])
	}

	return out
}
