// Package errors is the single import for error handling: stdlib matching plus
// pkg/errors wrapping, so store and push failures keep the stack of the call that
// raised them.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with a stack trace and message. It returns nil for a nil err.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Cause returns the innermost error of a pkg/errors chain.
func Cause(err error) error {
	return pkgerrors.Cause(err)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackTrace renders the deepest recorded stack in err's chain, or "" when none
// was recorded.
func StackTrace(err error) string {
	var trace pkgerrors.StackTrace
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if tracer, ok := e.(stackTracer); ok {
			trace = tracer.StackTrace()
		}
	}
	if len(trace) == 0 {
		return ""
	}

	return fmt.Sprintf("%+v", trace)
}
