package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendWritesOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)

	require.NoError(t, l.Append(Event{Event: EventAnalysisStarted, RequestID: "r1"}))
	require.NoError(t, l.Append(Event{Event: EventAnalysisFailed, RequestID: "r1", Cause: CauseRemote, Status: 502}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first Event
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, EventAnalysisStarted, first.Event)
	assert.False(t, first.Time.IsZero(), "time should be stamped automatically")

	var second Event
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, CauseRemote, second.Cause)
	assert.Equal(t, 502, second.Status)
}

func TestOmitsEmptyFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)

	require.NoError(t, l.Append(Event{Event: EventThemeToggled, Theme: "dark"}))
	line := buf.String()
	assert.NotContains(t, line, "request_id")
	assert.NotContains(t, line, "cause")
	assert.Contains(t, line, `"theme":"dark"`)
}
