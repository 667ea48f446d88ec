// Package logging provides the small structured logging contract used across
// the proxy, plus a JSON-lines implementation suitable for container stdout.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Logger is a deliberately small, framework-agnostic logging interface.
// Handlers and the storefront client depend on this abstraction so tests can
// inject a recording double.
type Logger interface {
	// Debug logs a debug-level message.
	Debug(msg string, fields ...Field)

	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Warn logs a warning.
	Warn(msg string, fields ...Field)

	// Error logs an error.
	Error(msg string, fields ...Field)

	// With returns a child logger carrying persistent fields.
	With(fields ...Field) Logger
}

// Field is a simple key/value pair for structured logging fields.
type Field struct {
	Key   string
	Value interface{}
}

// StdoutLogger prints one JSON object per line. The zero value is usable;
// NewStdoutLogger attaches a component name included on every entry.
type StdoutLogger struct {
	component  string
	persistent map[string]any
	out        io.Writer
}

// NewStdoutLogger creates a StdoutLogger. component is optional and is kept
// by child loggers returned from With().
func NewStdoutLogger(component string) *StdoutLogger {
	return &StdoutLogger{component: component, out: os.Stdout}
}

func (s *StdoutLogger) log(level string, msg string, fields ...Field) {
	type outEntry struct {
		Level     string         `json:"level"`
		Msg       string         `json:"msg"`
		Component string         `json:"component,omitempty"`
		Time      string         `json:"time"`
		Fields    map[string]any `json:"fields,omitempty"`
	}
	m := make(map[string]any, len(s.persistent)+len(fields))
	for k, v := range s.persistent {
		m[k] = v
	}
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	entry := outEntry{
		Level:     level,
		Msg:       msg,
		Component: s.component,
		Time:      time.Now().UTC().Format(time.RFC3339),
		Fields:    m,
	}
	out := s.out
	if out == nil {
		out = os.Stdout
	}
	enc, err := json.Marshal(entry)
	if err != nil {
		// Fallback simple formatting if JSON marshal fails
		fmt.Fprintf(out, "%s %s %v\n", level, msg, m)
		return
	}
	fmt.Fprintln(out, string(enc))
}

func (s *StdoutLogger) Debug(msg string, fields ...Field) { s.log("debug", msg, fields...) }

func (s *StdoutLogger) Info(msg string, fields ...Field) { s.log("info", msg, fields...) }

func (s *StdoutLogger) Warn(msg string, fields ...Field) { s.log("warn", msg, fields...) }

func (s *StdoutLogger) Error(msg string, fields ...Field) { s.log("error", msg, fields...) }

// With returns a child logger that repeats fields on every entry. A field
// keyed "component" replaces the component name instead.
func (s *StdoutLogger) With(fields ...Field) Logger {
	child := &StdoutLogger{
		component:  s.component,
		persistent: make(map[string]any, len(s.persistent)+len(fields)),
		out:        s.out,
	}
	for k, v := range s.persistent {
		child.persistent[k] = v
	}
	for _, f := range fields {
		if f.Key == "component" {
			if str, ok := f.Value.(string); ok {
				child.component = str
				continue
			}
		}
		child.persistent[f.Key] = f.Value
	}
	return child
}
