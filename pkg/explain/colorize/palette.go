// Package colorize renders explanations with terminal colors.
//
// Palette implements explain.Styler with lipgloss styles. Styling only
// wraps content in ANSI markers: Strip of a colorized rendering is byte
// identical to the plain rendering, so no information lives only in color.
package colorize

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/utkarsh5026/Explain/pkg/explain"
)

// Palette holds the styles applied to each fragment of a rendered report.
// The zero value renders everything unstyled.
type Palette struct {
	LabelStyle       lipgloss.Style
	SummaryStyle     lipgloss.Style
	DetailStyle      lipgloss.Style
	RemediationStyle lipgloss.Style
	HeaderStyle      lipgloss.Style
}

// compile-time guarantee that *Palette implements explain.Styler
var _ explain.Styler = (*Palette)(nil)

// Default returns the standard palette: red summaries, bold labels, green
// remediations hinting at the fix, dim cause headers.
func Default() *Palette {
	return &Palette{
		LabelStyle:       lipgloss.NewStyle().Bold(true),
		SummaryStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444")).Bold(true),
		DetailStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
		RemediationStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		HeaderStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true),
	}
}

func (p *Palette) Label(s string) string       { return p.LabelStyle.Render(s) }
func (p *Palette) Summary(s string) string     { return p.SummaryStyle.Render(s) }
func (p *Palette) Detail(s string) string      { return p.DetailStyle.Render(s) }
func (p *Palette) Remediation(s string) string { return p.RemediationStyle.Render(s) }
func (p *Palette) Header(s string) string      { return p.HeaderStyle.Render(s) }

// Render is shorthand for r.RenderStyled(p).
func (p *Palette) Render(r explain.Report) string {
	return r.RenderStyled(p)
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Strip removes ANSI style markers, recovering the plain rendering from a
// colorized one.
func Strip(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
