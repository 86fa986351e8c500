package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/utkarsh5026/Explain/pkg/audit"
)

func TestSampleReportRendering(t *testing.T) {
	out := sampleReport().Render()

	assert.True(t, strings.HasPrefix(out, "Error: Couldn't compile code"))
	assert.Contains(t, out, "Has: 2 explained causes.")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "Error: Variable missing_variable doesn't exist")
	assert.Contains(t, out, "Error: Function missing_function doesn't exist")
	assert.Contains(t, out, "Position: on line 1 and column 4")
}

func TestSampleReportSurvivesAuditRoundTrip(t *testing.T) {
	report := sampleReport()

	var buf bytes.Buffer
	require.NoError(t, audit.NewLog(&buf).Append(report))

	entries, err := audit.ReadLog(&buf)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, report.Render(), audit.Restore(entries[0].Report).Render())
}
