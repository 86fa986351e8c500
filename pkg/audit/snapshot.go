package audit

import (
	"github.com/utkarsh5026/Explain/pkg/explain"
)

// Position locates an error in its input, 1-based. EndLine/EndColumn are
// zero when only the start is known.
type Position struct {
	Line      int `json:"line" yaml:"line" msgpack:"line"`
	Column    int `json:"column" yaml:"column" msgpack:"column"`
	EndLine   int `json:"end_line,omitempty" yaml:"end_line,omitempty" msgpack:"end_line,omitempty"`
	EndColumn int `json:"end_column,omitempty" yaml:"end_column,omitempty" msgpack:"end_column,omitempty"`
}

// Snapshot is the serialization-friendly projection of an explain.Report.
// It carries no behavior beyond conversion; field names mirror the model so
// persisted logs stay readable.
type Snapshot struct {
	Summary     string     `json:"summary,omitempty" yaml:"summary,omitempty" msgpack:"summary,omitempty"`
	Cause       string     `json:"cause,omitempty" yaml:"cause,omitempty" msgpack:"cause,omitempty"`
	Context     string     `json:"context,omitempty" yaml:"context,omitempty" msgpack:"context,omitempty"`
	Position    *Position  `json:"position,omitempty" yaml:"position,omitempty" msgpack:"position,omitempty"`
	Remediation string     `json:"remediation,omitempty" yaml:"remediation,omitempty" msgpack:"remediation,omitempty"`
	Unexplained int        `json:"unexplained_causes,omitempty" yaml:"unexplained_causes,omitempty" msgpack:"unexplained_causes,omitempty"`
	CausedBy    []Snapshot `json:"caused_by,omitempty" yaml:"caused_by,omitempty" msgpack:"caused_by,omitempty"`
}

// Capture projects a report into a Snapshot. Explained causes are captured
// recursively in insertion order; causes with no content anywhere are
// recorded only as a count, since they carry nothing to preserve.
func Capture(r explain.Report) Snapshot {
	e := r.Explanation()
	s := Snapshot{
		Summary:     e.Summary(),
		Cause:       e.Cause(),
		Context:     e.Context(),
		Remediation: e.Remediation(),
	}
	if line, column := e.Start(); line > 0 {
		pos := &Position{Line: line, Column: column}
		if endLine, endColumn := e.End(); endLine > 0 {
			pos.EndLine = endLine
			pos.EndColumn = endColumn
		}
		s.Position = pos
	}
	for _, c := range r.Causes() {
		if c.Explained() {
			s.CausedBy = append(s.CausedBy, Capture(c))
		} else {
			s.Unexplained++
		}
	}
	return s
}

// Restore rebuilds a report from a Snapshot. The result renders
// byte-identically to the report the snapshot was captured from: counted
// unexplained causes come back as empty reports so cause counting lines
// are reproduced.
func Restore(s Snapshot) explain.Report {
	opts := explain.Opts{
		Cause:       s.Cause,
		Context:     s.Context,
		Remediation: s.Remediation,
	}
	if s.Position != nil {
		opts.Line = s.Position.Line
		opts.Column = s.Position.Column
		opts.EndLine = s.Position.EndLine
		opts.EndColumn = s.Position.EndColumn
	}

	r := explain.Describe(s.Summary, opts)
	for _, c := range s.CausedBy {
		r = r.WithCause(Restore(c))
	}
	for i := 0; i < s.Unexplained; i++ {
		r = r.WithCause(explain.Report{})
	}
	return r
}
