package explain

import (
	"sort"
	"strconv"
	"strings"
)

// unexplainedText is rendered for a report that is surfaced with no summary,
// so rendering never produces an empty string.
const unexplainedText = "Unexplained error"

// causeIndent is the indentation applied to each nesting level of causes.
const causeIndent = "  "

// Styler decorates fragments of a rendered report. Implementations must
// return the content unchanged apart from added style markers: stripping
// the markers from a styled rendering must yield the plain rendering byte
// for byte. The colorize subpackage provides a lipgloss-backed Styler.
type Styler interface {
	// Label styles field labels such as "Error:" and "Caused by:".
	Label(label string) string
	// Summary styles the summary value.
	Summary(text string) string
	// Detail styles cause, context and position values.
	Detail(text string) string
	// Remediation styles the remediation value.
	Remediation(text string) string
	// Header styles cause headers and counting lines.
	Header(text string) string
}

type noStyle struct{}

func (noStyle) Label(s string) string       { return s }
func (noStyle) Summary(s string) string     { return s }
func (noStyle) Detail(s string) string      { return s }
func (noStyle) Remediation(s string) string { return s }
func (noStyle) Header(s string) string      { return s }

// NoStyle is the identity Styler used for plain-text rendering.
var NoStyle Styler = noStyle{}

// Render returns the plain-text rendering of the report and its causes.
// The output is deterministic: stable field order, populated fields only,
// outermost report first, causes indented under a "Caused by:" delimiter.
func (r Report) Render() string {
	return r.RenderStyled(NoStyle)
}

// RenderStyled renders the report through the given Styler. A nil Styler
// renders plain. Content and layout are identical to Render; only style
// markers are added.
func (r Report) RenderStyled(st Styler) string {
	if st == nil {
		st = NoStyle
	}
	return strings.Join(r.renderLines(st), "\n")
}

// String implements fmt.Stringer with the plain rendering.
func (r Report) String() string {
	return r.Render()
}

func (r Report) renderLines(st Styler) []string {
	var lines []string

	summary := r.expl.summary
	if summary == "" {
		summary = unexplainedText
	}
	lines = append(lines, fieldLines(st, "Error", summary, st.Summary)...)
	if v := r.expl.cause; v != "" {
		lines = append(lines, fieldLines(st, "Cause", v, st.Detail)...)
	}
	if v := r.expl.context; v != "" {
		lines = append(lines, fieldLines(st, "Context", v, st.Detail)...)
	}
	if v := r.expl.positionText(); v != "" {
		lines = append(lines, fieldLines(st, "Position", v, st.Detail)...)
	}
	if v := r.expl.remediation; v != "" {
		lines = append(lines, fieldLines(st, "Remediation", v, st.Remediation)...)
	}

	explained, unexplained := splitCauses(r.causes)

	single := len(explained) == 1 && unexplained == 0
	if !single {
		if txt := causeCount(len(explained), unexplained); txt != "" {
			lines = append(lines, st.Label("Has:")+" "+st.Header(txt))
		}
	}

	if len(explained) > 0 {
		lines = append(lines, st.Label("Caused by:"))
		for i, c := range explained {
			if len(explained) > 1 {
				if i > 0 {
					lines = append(lines, "")
				}
				header := "- Cause " + strconv.Itoa(i+1) + " -"
				lines = append(lines, causeIndent+st.Header(header))
			}
			for _, ln := range c.renderLines(st) {
				lines = append(lines, indentLine(ln))
			}
		}
	}

	return lines
}

// splitCauses separates the explained causes, ordered simplest first, from
// the count of unexplained ones. Sorting is stable so equally sized causes
// keep insertion order.
func splitCauses(causes []Report) (explained []Report, unexplained int) {
	for _, c := range causes {
		if c.Explained() {
			explained = append(explained, c)
		} else {
			unexplained++
		}
	}
	sort.SliceStable(explained, func(i, j int) bool {
		return explained[i].size() < explained[j].size()
	})
	return explained, unexplained
}

// causeCount builds the "Has:" value, e.g. "2 explained causes and
// 1 unexplained cause.". Empty when there are no causes.
func causeCount(explained, unexplained int) string {
	var parts []string
	if p := pluralize(explained, "explained cause"); p != "" {
		parts = append(parts, p)
	}
	if p := pluralize(unexplained, "unexplained cause"); p != "" {
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " and ") + "."
}

func pluralize(n int, word string) string {
	switch n {
	case 0:
		return ""
	case 1:
		return "1 " + word
	default:
		return strconv.Itoa(n) + " " + word + "s"
	}
}

// fieldLines renders one labeled field. Continuation lines of a multi-line
// value are indented to align under the value, and each line is styled
// separately so indentation stays unstyled.
func fieldLines(st Styler, label, value string, style func(string) string) []string {
	pad := strings.Repeat(" ", len(label)+2)
	valueLines := strings.Split(value, "\n")
	lines := make([]string, 0, len(valueLines))
	for i, ln := range valueLines {
		if i == 0 {
			lines = append(lines, st.Label(label+":")+" "+style(ln))
			continue
		}
		lines = append(lines, pad+style(ln))
	}
	return lines
}

// indentLine indents one nesting level, leaving blank separator lines blank.
func indentLine(ln string) string {
	if ln == "" {
		return ""
	}
	return causeIndent + ln
}
