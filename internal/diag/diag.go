// Package diag defines the narrow diagnostics contract this subsystem
// depends on, without implementing a logging facade of its own.
// Structured logging is treated as an external collaborator here: only
// its contract, not an implementation, belongs in this package.
package diag

import "log"

// Sink receives diagnostic events: category is a short, stable string
// such as "pool" or "resource", msg is a human-readable description, and
// fields are alternating key/value pairs appended for context.
type Sink interface {
	Log(category, msg string, fields ...any)
}

// StdSink is a Sink backed by the standard library's log.Logger, so this
// package stays free of a structured-logging dependency of its own.
type StdSink struct {
	L *log.Logger
}

// Log implements Sink.
func (s StdSink) Log(category, msg string, fields ...any) {
	l := s.L
	if l == nil {
		l = log.Default()
	}
	args := append([]any{"[" + category + "] " + msg}, fields...)
	l.Println(args...)
}

// Discard is a Sink that drops every event, useful in tests.
type Discard struct{}

// Log implements Sink.
func (Discard) Log(string, string, ...any) {}

// Default is the process-wide diagnostics sink, replaceable by callers
// that want events routed elsewhere.
var Default Sink = StdSink{}
