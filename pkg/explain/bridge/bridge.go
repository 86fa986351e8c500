// Package bridge presents an explain.Report as a standard Go error.
//
// The core model deliberately does not implement the error interface;
// consumers that need to hand a report to generic error-handling code wrap
// it here. Error's Unwrap walks the cause tree one level at a time, so
// errors.Is and errors.As work the conventional way.
package bridge

import (
	"errors"

	"github.com/utkarsh5026/Explain/pkg/explain"
)

// Error adapts a Report to the standard error interface. Its message is the
// plain chain rendering, and Unwrap exposes the direct cause.
type Error struct {
	report explain.Report
}

// New wraps a report as a standard error.
func New(r explain.Report) *Error {
	return &Error{report: r}
}

// Report returns the wrapped report.
func (e *Error) Report() explain.Report {
	if e == nil {
		return explain.Report{}
	}
	return e.report
}

// Error returns the plain rendering of the full chain.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.report.Render()
}

// Unwrap returns the first direct cause as an *Error, or nil when the
// report has no causes. Consumers asking for "this error's direct cause"
// get exactly one level; they can keep unwrapping to walk the chain.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	causes := e.report.Causes()
	if len(causes) == 0 {
		return nil
	}
	return &Error{report: causes[0]}
}

// Wrap returns a new error explained by summary and opts, with err attached
// as its cause. A wrapped *Error contributes its full report; any other
// error contributes its text as a summary. Returns nil if err is nil.
func Wrap(err error, summary string, opts explain.Opts) *Error {
	if err == nil {
		return nil
	}
	return &Error{report: explain.Describe(summary, opts).WithCause(toReport(err))}
}

// Ensure converts any error to *Error.
//
// Behavior:
//   - nil input => nil output
//   - err already an *Error (anywhere in its chain) => that value
//   - otherwise its text becomes the report summary
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return &Error{report: toReport(err)}
}

func toReport(err error) explain.Report {
	var e *Error
	if errors.As(err, &e) {
		return e.report
	}
	return explain.Describe(err.Error(), explain.Opts{})
}
