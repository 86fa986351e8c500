package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/utkarsh5026/Explain/pkg/explain"
)

func compileReport() explain.Report {
	return explain.Describe("Couldn't compile code", explain.Opts{}).
		WithCause(explain.Describe("missing variable", explain.Opts{
			Cause:       "variable my_var was not found",
			Context:     "if my_var > 0",
			Remediation: "declare my_var before using it",
			Line:        1,
			Column:      4,
			EndLine:     1,
			EndColumn:   10,
		})).
		WithCause(explain.Describe("missing function", explain.Opts{
			Cause: "function is_odd was not found",
		})).
		WithCause(explain.Report{})
}

func TestCaptureMirrorsModel(t *testing.T) {
	s := Capture(compileReport())

	assert.Equal(t, "Couldn't compile code", s.Summary)
	assert.Empty(t, s.Cause)
	require.Len(t, s.CausedBy, 2)
	assert.Equal(t, 1, s.Unexplained)

	variable := s.CausedBy[0]
	assert.Equal(t, "missing variable", variable.Summary)
	assert.Equal(t, "variable my_var was not found", variable.Cause)
	assert.Equal(t, "if my_var > 0", variable.Context)
	assert.Equal(t, "declare my_var before using it", variable.Remediation)
	require.NotNil(t, variable.Position)
	assert.Equal(t, &Position{Line: 1, Column: 4, EndLine: 1, EndColumn: 10}, variable.Position)

	function := s.CausedBy[1]
	assert.Equal(t, "missing function", function.Summary)
	assert.Nil(t, function.Position)
}

func TestRestoreRendersIdentically(t *testing.T) {
	tests := []struct {
		name   string
		report explain.Report
	}{
		{"summary only", explain.Describe("boom", explain.Opts{})},
		{
			"all fields",
			explain.Describe("File not found", explain.Opts{
				Cause:       "path does not exist",
				Context:     "loading config at startup",
				Remediation: "check the file path",
			}),
		},
		{"cause tree with unexplained", compileReport()},
		{"empty report", explain.Report{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restored := Restore(Capture(tt.report))
			assert.Equal(t, tt.report.Render(), restored.Render())
		})
	}
}

func TestCodecRoundTrip(t *testing.T) {
	report := compileReport()
	original := Capture(report)

	for _, format := range []Format{FormatJSON, FormatYAML, FormatMsgpack} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(format, original)
			require.NoError(t, err)

			decoded, err := Unmarshal(format, data)
			require.NoError(t, err)

			assert.Equal(t, original, decoded)
			assert.Equal(t, report.Render(), Restore(decoded).Render())
		})
	}
}

func TestMarshalUnknownFormat(t *testing.T) {
	_, err := Marshal(Format("xml"), Snapshot{})
	assert.Error(t, err)

	_, err = Unmarshal(Format("xml"), []byte("{}"))
	assert.Error(t, err)
}

func TestJSONFieldNamesMirrorModel(t *testing.T) {
	data, err := Marshal(FormatJSON, Capture(compileReport()))
	require.NoError(t, err)

	for _, field := range []string{
		`"summary"`, `"cause"`, `"context"`, `"remediation"`,
		`"position"`, `"line"`, `"column"`,
		`"unexplained_causes"`, `"caused_by"`,
	} {
		assert.Contains(t, string(data), field)
	}
}
