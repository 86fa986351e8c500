package audit

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/utkarsh5026/Explain/pkg/explain"
)

func TestLogAppendAndRead(t *testing.T) {
	var buf bytes.Buffer
	log := NewLog(&buf)

	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	log.now = func() time.Time { return fixed }

	first := explain.Describe("Failed to start service", explain.Opts{}).
		WithCause(explain.Describe("Failed to load config", explain.Opts{
			Cause: "permission denied",
		}))
	second := explain.Describe("File not found", explain.Opts{
		Remediation: "check the file path",
	})

	require.NoError(t, log.Append(first))
	require.NoError(t, log.Append(second))

	// one JSON object per line
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "{"), "line not a JSON object: %s", line)
	}

	entries, err := ReadLog(&buf)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, fixed, entries[0].Time)
	assert.Equal(t, first.Render(), Restore(entries[0].Report).Render())
	assert.Equal(t, second.Render(), Restore(entries[1].Report).Render())
}

func TestReadLogEmpty(t *testing.T) {
	entries, err := ReadLog(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadLogCorruptEntry(t *testing.T) {
	_, err := ReadLog(strings.NewReader("{\"time\":\"2026-08-01T12:00:00Z\"}\nnot json\n"))
	assert.Error(t, err)
}
