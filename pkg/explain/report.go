package explain

// Explainer is implemented by domain error types that can describe
// themselves. Implementors should at least give a summary, and ideally a
// cause and a remediation for the user.
type Explainer interface {
	Explain() Explanation
}

// Report is one node of a cause tree: its own Explanation plus the reports
// that caused it. The zero value is an empty, unexplained report.
//
// Reports extend by value: WithCause returns a new Report and never mutates
// the receiver, so a report can be shared as a value without aliasing
// surprises.
type Report struct {
	expl   Explanation
	causes []Report
}

// NewReport wraps a single Explanation into a Report with no causes.
func NewReport(e Explanation) Report {
	return Report{expl: e}
}

// Describe builds an Explanation and wraps it into a Report in one step.
// This is the common construction path:
//
//	explain.Describe("File not found", explain.Opts{Cause: "path does not exist"})
func Describe(summary string, opts Opts) Report {
	return NewReport(New(summary, opts))
}

// From lifts a domain error implementing Explainer into a Report.
func From(x Explainer) Report {
	return NewReport(x.Explain())
}

// Explanation returns the report's own explanation layer.
func (r Report) Explanation() Explanation { return r.expl }

// Causes returns a copy of the direct causes, in insertion order.
func (r Report) Causes() []Report {
	if len(r.causes) == 0 {
		return nil
	}
	out := make([]Report, len(r.causes))
	copy(out, r.causes)
	return out
}

// WithCause returns a new Report with cause appended to the direct causes.
// All prior causes are preserved.
func (r Report) WithCause(cause Report) Report {
	causes := make([]Report, 0, len(r.causes)+1)
	causes = append(causes, r.causes...)
	causes = append(causes, cause)
	r.causes = causes
	return r
}

// WithCauseOf is shorthand for WithCause(From(x)).
func (r Report) WithCauseOf(x Explainer) Report {
	return r.WithCause(From(x))
}

// Explained reports whether the report carries any content at all: a
// populated explanation field on this node, or an explained cause below it.
// Unexplained reports are counted rather than rendered.
func (r Report) Explained() bool {
	if !r.expl.IsZero() {
		return true
	}
	for _, c := range r.causes {
		if c.Explained() {
			return true
		}
	}
	return false
}

// size returns the number of nodes in the tree, used to order sibling
// causes from simplest to most involved when rendering.
func (r Report) size() int {
	n := 1
	for _, c := range r.causes {
		n += c.size()
	}
	return n
}

// Leaves returns the reports with no causes of their own. For a tree where
// A is caused by B and C, and C is caused by D, the leaves are B and D.
func (r Report) Leaves() []Report {
	if len(r.causes) == 0 {
		return []Report{r}
	}
	var out []Report
	for _, c := range r.causes {
		out = append(out, c.Leaves()...)
	}
	return out
}

// Invert returns one linear chain per leaf, with the ancestry reversed: the
// leaf becomes the outermost report and each ancestor hangs below it as the
// sole cause. For a tree where A is caused by B and C, and C is caused by
// D, Invert returns B with cause A, and D with cause C with cause A.
func (r Report) Invert() []Report {
	var out []Report
	var stack []Explanation

	var walk func(n Report)
	walk = func(n Report) {
		stack = append(stack, n.expl)
		if len(n.causes) == 0 {
			chain := NewReport(stack[0])
			for i := 1; i < len(stack); i++ {
				chain = NewReport(stack[i]).WithCause(chain)
			}
			out = append(out, chain)
		}
		for _, c := range n.causes {
			walk(c)
		}
		stack = stack[:len(stack)-1]
	}
	walk(r)

	return out
}
