// Package trace provides a context-carried, leveled tracer used
// throughout RandomShake's supporting packages for diagnostic output.
package trace

import (
	"context"
	"fmt"
	"log"
	"os"
)

// LogLevel represents tracing verbosity level
type LogLevel int

const (
	// LogLevelNormal for regular user-facing messages
	LogLevelNormal LogLevel = iota
	// LogLevelVerbose for detailed debug/trace info
	LogLevelVerbose
	// LogLevelTrace for maximum verbosity with full trace output
	LogLevelTrace
)

type traceKeyType string

const traceKey traceKeyType = "tracer"

// Tracer provides a context-aware tracing interface
type Tracer struct {
	prefix  string
	level   LogLevel
	verbose bool
}

// NewTracer creates a new tracer instance
func NewTracer(prefix string, level LogLevel) *Tracer {
	return &Tracer{
		prefix:  prefix,
		level:   level,
		verbose: level >= LogLevelVerbose,
	}
}

// Tracef logs a message at the TRACE level (most verbose)
func (t *Tracer) Tracef(format string, args ...interface{}) {
	if t.level < LogLevelTrace {
		return
	}
	msg := fmt.Sprintf(format, args...)
	log.Printf("%s TRACE: %s", t.prefix, msg)
}

// WithContext adds the tracer to the given context
func WithContext(ctx context.Context, tracer *Tracer) context.Context {
	return context.WithValue(ctx, traceKey, tracer)
}

// FromContext extracts the tracer from the context
func FromContext(ctx context.Context) *Tracer {
	if tracer, ok := ctx.Value(traceKey).(*Tracer); ok {
		return tracer
	}
	// Return a default tracer if none found in context
	return NewTracer("", LogLevelNormal)
}

// SetVerbose updates the verbose flag
func (t *Tracer) SetVerbose(verbose bool) {
	t.verbose = verbose
	if verbose {
		t.level = LogLevelVerbose
	} else {
		t.level = LogLevelNormal
	}
}

// IsVerbose returns whether verbose tracing is enabled
func (t *Tracer) IsVerbose() bool {
	return t.verbose
}

// Infof logs a formatted message at normal level
func (t *Tracer) Infof(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if t.prefix != "" {
		log.Printf("%s: %s", t.prefix, msg)
	} else {
		log.Print(msg)
	}
}

// Debugf logs a formatted message only if verbose is enabled
func (t *Tracer) Debugf(format string, args ...interface{}) {
	if !t.verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	log.Printf("%s: %s", t.prefix, msg)
}

// Warnf logs a formatted message at warning severity. Unlike Debugf it is
// always emitted regardless of verbosity: a warning (e.g. a low-quality
// entropy source) is something a caller should see by default, not
// something that requires opting into verbose tracing.
func (t *Tracer) Warnf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if t.prefix != "" {
		log.Printf("%s WARN: %s", t.prefix, msg)
	} else {
		log.Printf("WARN: %s", msg)
	}
}

// Error logs an error message
func (t *Tracer) Error(err error) {
	if t.prefix != "" {
		log.Printf("%s ERROR: %v", t.prefix, err)
	} else {
		log.Printf("ERROR: %v", err)
	}
}

// Fatal logs a fatal error and exits
func (t *Tracer) Fatal(err error) {
	if t.prefix != "" {
		log.Fatalf("%s FATAL: %v", t.prefix, err)
	} else {
		log.Fatalf("FATAL: %v", err)
	}
	os.Exit(1)
}

// WithPrefix creates a new tracer with the given prefix
func (t *Tracer) WithPrefix(prefix string) *Tracer {
	return &Tracer{
		prefix:  prefix,
		level:   t.level,
		verbose: t.verbose,
	}
}
