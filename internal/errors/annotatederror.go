// Package errors extends the standard library errors with slog
// annotations and source-location capture. Callers import this package
// instead of the standard one; the stdlib helpers are re-exported.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

// New returns an error that formats as the given text.
func New(text string) error { return errors.New(text) }

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool { return errors.As(err, target) }

// Join wraps the given errors into a single error.
func Join(errs ...error) error { return errors.Join(errs...) }

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error { return errors.Unwrap(err) }

// annotatedError carries a message, optional wrapped error, slog
// annotations, and the source location where it was created.
type annotatedError struct {
	msg         string
	err         error
	annotations []slog.Attr
	file        string
	line        int
}

func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *annotatedError) Unwrap() error { return e.err }

// NewSentinel creates an error suitable for package-level sentinels. The
// creation site is recorded for logging.
func NewSentinel(msg string) error {
	file, line := callerLocation(1)
	return &annotatedError{msg: msg, file: file, line: line}
}

// Wrap annotates err with a message and optional slog attributes. The
// wrapping site is recorded for logging. A nil err is tolerated so that
// callers do not need to guard recovery paths.
func Wrap(err error, msg string, annotations ...slog.Attr) error {
	file, line := callerLocation(1)
	return &annotatedError{
		msg:         msg,
		err:         err,
		annotations: annotations,
		file:        file,
		line:        line,
	}
}

// DecoratePanic converts a recovered panic value into an error whose
// recorded source location is the panic site rather than the recovery
// handler.
func DecoratePanic(recovered any) error {
	e := &annotatedError{msg: fmt.Sprintf("panic: %v", recovered)}
	e.file, e.line = panicLocation()
	if e.file == "" {
		e.file, e.line = callerLocation(1)
	}
	return e
}

// SlogError renders an error as a structured "error" group carrying the
// message, any annotations found in the error tree, and the source
// location of the innermost annotated error. Safe to call with nil.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error")
	}

	var (
		annotations []any
		file        string
		line        int
	)
	visitAnnotated(err, func(e *annotatedError) {
		for _, a := range e.annotations {
			annotations = append(annotations, a)
		}
		if e.file != "" {
			file, line = e.file, e.line
		}
	})

	attrs := []any{slog.String("message", err.Error())}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Group("annotations", annotations...))
	}
	if file != "" {
		attrs = append(attrs, slog.String("source", fmt.Sprintf("%s:%d", file, line)))
	}
	return slog.Group("error", attrs...)
}

// visitAnnotated walks the error tree outermost first, calling fn for
// every annotated error it finds.
func visitAnnotated(err error, fn func(*annotatedError)) {
	if err == nil {
		return
	}
	if e, ok := err.(*annotatedError); ok {
		fn(e)
	}
	switch x := err.(type) {
	case interface{ Unwrap() error }:
		visitAnnotated(x.Unwrap(), fn)
	case interface{ Unwrap() []error }:
		for _, e := range x.Unwrap() {
			visitAnnotated(e, fn)
		}
	}
}

// callerLocation resolves the file base name and line of the caller,
// skipping this package's own frames.
func callerLocation(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", 0
	}
	return filepath.Base(file), line
}

// panicLocation walks the stack past the runtime panic machinery to find
// the frame that panicked.
func panicLocation() (string, int) {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	seenPanic := false
	for {
		frame, more := frames.Next()
		if seenPanic && !strings.HasPrefix(frame.Function, "runtime.") {
			return filepath.Base(frame.File), frame.Line
		}
		if frame.Function == "runtime.gopanic" {
			seenPanic = true
		}
		if !more {
			return "", 0
		}
	}
}
