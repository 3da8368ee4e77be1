// File: diag.go
// Title: Diagnostic Model and Sinks
// Description: Defines Phase, Severity and Diagnostic together with the Sink
//              interface and its List, Tee and WriterSink implementations.
//              Diagnostics convert to structured errors for exit status
//              decisions and logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package diag

import (
	"fmt"
	"io"
	"sync"

	mdwerror "github.com/msto63/minilang/foundation/core/error"
)

// Phase identifies the compiler phase that reported a diagnostic
type Phase int

const (
	PhaseLexical Phase = iota
	PhaseSyntax
	PhaseSemantic
)

// String returns the phase tag used in rendered diagnostics
func (p Phase) String() string {
	switch p {
	case PhaseLexical:
		return "Lexical"
	case PhaseSyntax:
		return "Syntax"
	case PhaseSemantic:
		return "Semantic"
	default:
		return "Unknown"
	}
}

// Code returns the error code for diagnostics of this phase
func (p Phase) Code() mdwerror.Code {
	switch p {
	case PhaseLexical:
		return mdwerror.CodeLexical
	case PhaseSyntax:
		return mdwerror.CodeSyntax
	case PhaseSemantic:
		return mdwerror.CodeSemantic
	default:
		return mdwerror.CodeUnknown
	}
}

// Severity distinguishes warnings from errors
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns "Warning" or "Error"
func (s Severity) String() string {
	if s == SeverityWarning {
		return "Warning"
	}
	return "Error"
}

// Diagnostic is a single located compiler message
type Diagnostic struct {
	Phase    Phase
	Severity Severity
	Line     int // 1-based
	Column   int // 0-based
	Message  string
}

// Warningf builds a warning diagnostic
func Warningf(phase Phase, line, column int, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Phase:    phase,
		Severity: SeverityWarning,
		Line:     line,
		Column:   column,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Errorf builds an error diagnostic
func Errorf(phase Phase, line, column int, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Phase:    phase,
		Severity: SeverityError,
		Line:     line,
		Column:   column,
		Message:  fmt.Sprintf(format, args...),
	}
}

// String renders the diagnostic as one line, for example
// "Lexical Warning at line 1, col 8: Identifier 'abcdefgh' truncated to 'abcde'".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s at line %d, col %d: %s", d.Phase, d.Severity, d.Line, d.Column, d.Message)
}

// IsError reports whether the diagnostic has error severity
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}

// Err converts the diagnostic into a structured error carrying the phase code
// and the source position as details.
func (d Diagnostic) Err() *mdwerror.Error {
	severity := mdwerror.SeverityLow
	if d.IsError() {
		severity = mdwerror.SeverityMedium
	}
	return mdwerror.New(d.Message).
		WithCode(d.Phase.Code()).
		WithSeverity(severity).
		WithOperation("minilang." + d.Phase.String()).
		WithDetail("line", d.Line).
		WithDetail("column", d.Column).
		WithDetail("diagnostic_severity", d.Severity.String())
}

// Sink receives diagnostics in the order they are discovered
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(d Diagnostic)

// Report calls f(d)
func (f SinkFunc) Report(d Diagnostic) {
	f(d)
}

// Discard is a Sink that drops everything
var Discard Sink = SinkFunc(func(Diagnostic) {})

// List is an append-only, order-preserving Sink. The zero value is ready to
// use and safe for concurrent reporting.
type List struct {
	mu    sync.Mutex
	items []Diagnostic
}

// NewList returns an empty List
func NewList() *List {
	return &List{}
}

// Report appends d
func (l *List) Report(d Diagnostic) {
	l.mu.Lock()
	l.items = append(l.items, d)
	l.mu.Unlock()
}

// Diagnostics returns a copy of all diagnostics in report order
func (l *List) Diagnostics() []Diagnostic {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Diagnostic, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of reported diagnostics
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Count returns the number of diagnostics reported by phase
func (l *List) Count(phase Phase) int {
	return len(l.filter(func(d Diagnostic) bool { return d.Phase == phase }))
}

// HasErrors reports whether any diagnostic has error severity
func (l *List) HasErrors() bool {
	return len(l.Errors()) > 0
}

// Errors returns the error diagnostics in report order
func (l *List) Errors() []Diagnostic {
	return l.filter(Diagnostic.IsError)
}

// Warnings returns the warning diagnostics in report order
func (l *List) Warnings() []Diagnostic {
	return l.filter(func(d Diagnostic) bool { return !d.IsError() })
}

// Err returns nil when no error diagnostic was reported. Otherwise it returns
// a COMPILATION_FAILED error wrapping the first error diagnostic, with the
// error count per phase as details.
func (l *List) Err() error {
	errs := l.Errors()
	if len(errs) == 0 {
		return nil
	}

	counts := map[string]interface{}{"errors": len(errs)}
	for _, d := range errs {
		key := "errors_" + d.Phase.String()
		n, _ := counts[key].(int)
		counts[key] = n + 1
	}

	return mdwerror.Wrap(errs[0].Err(), fmt.Sprintf("compilation reported %d error(s)", len(errs))).
		WithCode(mdwerror.CodeCompilationFailed).
		WithSeverity(mdwerror.SeverityMedium).
		WithDetails(counts)
}

func (l *List) filter(keep func(Diagnostic) bool) []Diagnostic {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Diagnostic
	for _, d := range l.items {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

type tee []Sink

func (t tee) Report(d Diagnostic) {
	for _, s := range t {
		s.Report(d)
	}
}

// Tee returns a Sink that forwards every diagnostic to all sinks in order.
// Nil sinks are skipped.
func Tee(sinks ...Sink) Sink {
	out := make(tee, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// WriterSink writes each diagnostic as one line to an io.Writer
type WriterSink struct {
	mu     sync.Mutex
	w      io.Writer
	format func(Diagnostic) string
}

// NewWriterSink returns a WriterSink using Diagnostic.String
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w, format: Diagnostic.String}
}

// WithFormat replaces the line renderer, e.g. to add terminal colors
func (s *WriterSink) WithFormat(format func(Diagnostic) string) *WriterSink {
	if format != nil {
		s.format = format
	}
	return s
}

// Report writes d followed by a newline. Write errors are ignored.
func (s *WriterSink) Report(d Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.w, s.format(d)+"\n")
}
