// Package diag is the assembler's diagnostics sink: a process-wide current
// line plus Status/Warning/Error severities backed by glog.
package diag

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
)

// ErrAssembly is the sentinel returned when an Error-severity diagnostic has
// aborted the current pass.
var ErrAssembly = errors.New("assembly aborted")

// Sink accumulates warnings and tracks the current line for line-tagged
// diagnostics. The driver holds exactly one Sink per Assemble call.
type Sink struct {
	line     int
	Warnings []Warning
}

// Warning is one accumulated Warning-severity diagnostic.
type Warning struct {
	Line int
	Msg  string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Msg)
}

// NewSink returns an empty Sink.
func NewSink() *Sink { return &Sink{} }

// WithLine scopes the current-line context for the duration of f, releasing
// it on every exit path including a panic.
func (s *Sink) WithLine(n int, f func()) {
	prev := s.line
	s.line = n
	defer func() { s.line = prev }()
	f()
}

// Status logs a Status-severity message at verbosity 1; always non-fatal and
// never accumulated.
func (s *Sink) Status(format string, args ...interface{}) {
	glog.V(1).Infof(s.tag()+format, args...)
}

// Warn logs and accumulates a Warning-severity diagnostic.
func (s *Sink) Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	glog.Warning(s.tag() + msg)
	s.Warnings = append(s.Warnings, Warning{Line: s.line, Msg: msg})
}

// Err logs an Error-severity diagnostic and returns an error wrapping
// ErrAssembly, for the caller to propagate to abort the current pass. The
// assembler driver does not call it: it returns its own typed errors.
func (s *Sink) Err(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	glog.Error(s.tag() + msg)
	return fmt.Errorf("line %d: %s: %w", s.line, msg, ErrAssembly)
}

// Bug logs a Fatalf for conditions that indicate an assembler defect rather
// than bad input: a resolved OpCode whose Emit produced a byte count other
// than its recorded Size, for example. This never returns.
func (s *Sink) Bug(format string, args ...interface{}) {
	glog.Fatalf(s.tag()+format, args...)
}

func (s *Sink) tag() string {
	if s.line == 0 {
		return ""
	}
	return fmt.Sprintf("line %d: ", s.line)
}
