// Package explain provides the core data model for rich, human-readable
// error explanations.
//
// # Design Principles
//
// 1. Explanations answer the questions a user actually asks: what happened,
// why, where, and how to fix it
// 2. Reports compose explanations into a cause tree, extended by value as
// the fault propagates up the call stack
// 3. Rendering is pure and total: it never fails and never drops populated
// information
// 4. Optional capabilities (colorization, standard-error bridging,
// serialization) live in separate packages; this package depends on none
// of them
//
// # Building Explanations
//
// An Explanation is constructed from a required summary and an Opts value
// holding the optional fields:
//
//	e := explain.New("File not found", explain.Opts{
//	    Cause:       "path does not exist",
//	    Context:     "loading config at startup",
//	    Remediation: "check the file path",
//	})
//
// Domain error types can implement the Explainer interface instead and be
// lifted into a Report with From.
//
// # Cause Trees
//
// A Report wraps one Explanation and any number of cause Reports. Wrapping
// never mutates: WithCause returns a new value with the prior causes
// preserved.
//
//	r := explain.Describe("Failed to start service", explain.Opts{}).
//	    WithCause(explain.Describe("Failed to load config", explain.Opts{
//	        Cause: "permission denied",
//	    }))
//
// # Rendering
//
// Render produces a deterministic multi-line string, outermost report first,
// each cause block indented under a "Caused by:" delimiter. Fields appear in
// a stable order (summary, cause, context, position, remediation) and
// unpopulated fields are omitted entirely. Causes with no content anywhere
// are counted ("Has: 2 unexplained causes.") rather than rendered as empty
// blocks.
//
// RenderStyled accepts a Styler so a colorized rendering stays a strict
// superset of the plain one: stripping the style markers yields the plain
// output byte for byte.
package explain
