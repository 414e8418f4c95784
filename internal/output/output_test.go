package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/fieldset/internal/engine"
)

func sampleResult() *engine.RunResult {
	result := &engine.RunResult{
		RunID:         "00000000-0000-0000-0000-000000000000",
		SchemaName:    "menagerie",
		SchemaVersion: "1.0.0",
		StartTime:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		EndTime:       time.Date(2026, 1, 2, 3, 4, 6, 0, time.UTC),
		Duration:      time.Second,
		Documents: []engine.DocumentResult{
			{
				Index:    0,
				Record:   "Person",
				Status:   engine.StatusPass,
				Rendered: "Person(\n  # The name\n  name='JAMES'\n)",
			},
			{
				Index:   1,
				Record:  "Person",
				Status:  engine.StatusFail,
				Kind:    engine.KindPrecondition,
				Message: "Person: field \"age\" = 160 failed precondition",
			},
		},
	}
	result.Summary = engine.ResultSummary{
		TotalDocuments:  2,
		PassedDocuments: 1,
		FailedDocuments: 1,
	}
	return result
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer

	formatter := NewJSONFormatter(&buf, true)
	require.NoError(t, formatter.Format(sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "menagerie", decoded["schema_name"])
	assert.Equal(t, "1.0.0", decoded["schema_version"])

	docs, ok := decoded["documents"].([]any)
	require.True(t, ok)
	assert.Len(t, docs, 2)
}

func TestJSONFormatter_Compact(t *testing.T) {
	var buf bytes.Buffer

	formatter := NewJSONFormatter(&buf, false)
	require.NoError(t, formatter.Format(sampleResult()))

	// Compact output is a single line plus the trailing newline.
	assert.NotContains(t, strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer

	formatter := NewYAMLFormatter(&buf)
	require.NoError(t, formatter.Format(sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "schema_name: menagerie")
	assert.Contains(t, out, "status: pass")
	assert.Contains(t, out, "error_kind: precondition_failed")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer

	formatter := NewTableFormatter(&buf)
	formatter.EnableColor = false
	require.NoError(t, formatter.Format(sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "Schema: menagerie (v1.0.0)")
	assert.Contains(t, out, "[PASS] #0 Person")
	assert.Contains(t, out, "[FAIL] #1 Person")
	assert.Contains(t, out, "name='JAMES'")
	assert.Contains(t, out, "precondition_failed")
	assert.Contains(t, out, "2 documents, 1 passed, 1 failed, 0 errors")
}

func TestSARIFFormatter(t *testing.T) {
	var buf bytes.Buffer

	formatter := NewSARIFFormatter(&buf, "1.2.3")
	require.NoError(t, formatter.Format(sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "2.1.0", decoded["version"])

	runs, ok := decoded["runs"].([]any)
	require.True(t, ok)
	require.Len(t, runs, 1)

	run, ok := runs[0].(map[string]any)
	require.True(t, ok)

	// Only the failed document becomes a SARIF result.
	results, ok := run["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 1)

	first, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, engine.KindPrecondition, first["ruleId"])
}

func TestNewFormatter(t *testing.T) {
	var buf bytes.Buffer

	for _, format := range SupportedFormats() {
		formatter, err := NewFormatter(format, &buf, "1.2.3")
		require.NoError(t, err, format)
		require.NotNil(t, formatter, format)
	}

	_, err := NewFormatter("junit", &buf, "1.2.3")
	assert.Error(t, err)
}
