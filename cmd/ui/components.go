package ui

import (
	"fmt"
	"strings"
)

// EntryInfo describes one audit-log entry for display.
type EntryInfo struct {
	Index   int
	Time    string
	Content string
}

// FormatEntryDetailed renders an audit entry with its rendered report
// inside a box.
func FormatEntryDetailed(entry EntryInfo) string {
	var content strings.Builder

	content.WriteString(fmt.Sprintf("%s %s  %s %s\n\n",
		Yellow("#"+fmt.Sprint(entry.Index)),
		Gray(IconSeparator),
		Cyan(IconClock),
		Gray(entry.Time)))
	content.WriteString(entry.Content)

	return ReportBox(content.String())
}

// SuccessMessage creates a success message with a checkmark icon
func SuccessMessage(message string, details ...string) string {
	parts := []string{Green(IconFix), Green(message)}
	for _, detail := range details {
		parts = append(parts, Cyan(detail))
	}
	return strings.Join(parts, " ")
}

// ErrorMessage formats an error message in red
func ErrorMessage(message string) string {
	return fmt.Sprintf("%s %s", Red(IconError), Red(message))
}
