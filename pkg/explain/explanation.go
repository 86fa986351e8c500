package explain

import (
	"strconv"
	"strings"
)

// Opts holds the optional fields of an Explanation. The zero value means
// "summary only"; blank or whitespace-only strings normalize to absent.
type Opts struct {
	// Cause answers why the error happened
	// (e.g., "path does not exist").
	Cause string

	// Context answers where or under which conditions it happened
	// (e.g., "loading config at startup").
	Context string

	// Remediation answers how to resolve it
	// (e.g., "check the file path").
	Remediation string

	// Line and Column locate where the error starts to happen, 1-based.
	// Zero means no position. Useful for parsing errors.
	Line   int
	Column int

	// EndLine and EndColumn locate where the error finishes happening.
	// Ignored unless Line is set.
	EndLine   int
	EndColumn int
}

// Explanation is one descriptive layer of a fault. It is immutable once
// constructed; build a new one rather than modifying an existing value.
type Explanation struct {
	summary     string
	cause       string
	context     string
	remediation string
	line        int
	column      int
	endLine     int
	endColumn   int
}

// New creates an Explanation from a summary and optional fields.
// All text fields are trimmed; fields that trim to empty are treated
// as absent.
func New(summary string, opts Opts) Explanation {
	e := Explanation{
		summary:     strings.TrimSpace(summary),
		cause:       strings.TrimSpace(opts.Cause),
		context:     strings.TrimSpace(opts.Context),
		remediation: strings.TrimSpace(opts.Remediation),
	}
	if opts.Line > 0 {
		e.line = opts.Line
		e.column = opts.Column
		if opts.EndLine > 0 {
			e.endLine = opts.EndLine
			e.endColumn = opts.EndColumn
		}
	}
	return e
}

// Summary returns the short description of what happened.
// Empty when the explanation carries no summary.
func (e Explanation) Summary() string { return e.summary }

// Cause returns why the error happened, or "" when absent.
func (e Explanation) Cause() string { return e.cause }

// Context returns where or under which conditions it happened,
// or "" when absent.
func (e Explanation) Context() string { return e.context }

// Remediation returns how to resolve the error, or "" when absent.
func (e Explanation) Remediation() string { return e.remediation }

// Start returns the 1-based line and column where the error starts.
// Both are zero when no position was given.
func (e Explanation) Start() (line, column int) { return e.line, e.column }

// End returns the 1-based line and column where the error ends.
// Both are zero when no end position was given.
func (e Explanation) End() (line, column int) { return e.endLine, e.endColumn }

// IsZero reports whether no field of the explanation is populated.
func (e Explanation) IsZero() bool {
	return e.summary == "" && e.cause == "" && e.context == "" &&
		e.remediation == "" && e.line == 0
}

// positionText renders the position field, or "" when no position is set.
func (e Explanation) positionText() string {
	if e.line == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("on line ")
	b.WriteString(strconv.Itoa(e.line))
	b.WriteString(" and column ")
	b.WriteString(strconv.Itoa(e.column))
	if e.endLine > 0 {
		b.WriteString(" up to line ")
		b.WriteString(strconv.Itoa(e.endLine))
		b.WriteString(" and column ")
		b.WriteString(strconv.Itoa(e.endColumn))
	}
	return b.String()
}
