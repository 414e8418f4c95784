package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/fieldset/internal/config"
)

const testSchema = `schema:
  name: menagerie
  version: "1.0.0"
records:
  - name: Person
    fields:
      - name: name
        type: string
        label: The name
      - name: age
        type: int
        label: The person's age
        precondition: 0 <= value && value <= 150
      - name: income
        type: float
        label: The person's income
        precondition: value >= 0.0
`

func testRunner(t *testing.T, workers int) *Runner {
	t.Helper()

	file, err := config.LoadSchemaFileFromReader(strings.NewReader(testSchema))
	require.NoError(t, err)

	registry, err := config.BuildRegistry(file)
	require.NoError(t, err)

	return NewRunner(registry, file.Metadata, workers)
}

func validPerson() map[string]any {
	return map[string]any{"name": "JAMES", "age": 110, "income": 24000.0}
}

func TestRunner_AllPass(t *testing.T) {
	runner := testRunner(t, 4)

	docs := []config.Document{
		{Record: "Person", Values: validPerson()},
		{Record: "Person", Values: map[string]any{"name": "ANNA", "age": 30, "income": 0.0}},
	}

	result, err := runner.Run(context.Background(), docs)
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "menagerie", result.SchemaName)
	assert.Equal(t, "1.0.0", result.SchemaVersion)
	assert.Equal(t, 2, result.Summary.TotalDocuments)
	assert.Equal(t, 2, result.Summary.PassedDocuments)
	assert.False(t, result.HasFailures())

	require.Len(t, result.Documents, 2)
	assert.Equal(t, StatusPass, result.Documents[0].Status)
	assert.Contains(t, result.Documents[0].Rendered, "name='JAMES'")
}

func TestRunner_ClassifiesFailures(t *testing.T) {
	runner := testRunner(t, 2)

	docs := []config.Document{
		{Record: "Person", Values: validPerson()},
		{Record: "Person", Values: map[string]any{"name": "JAMES", "age": 160, "income": 24000.0}},
		{Record: "Person", Values: map[string]any{"name": "JAMES"}},
		{Record: "Person", Values: map[string]any{"name": "JAMES", "age": "150", "income": 24000.0}},
		{Record: "Person", Values: map[string]any{"name": "JAMES", "age": 110, "income": 24000.0, "wealth": 1.0}},
		{Record: "Wizard", Values: map[string]any{"name": "JAMES"}},
	}

	result, err := runner.Run(context.Background(), docs)
	require.NoError(t, err)

	assert.Equal(t, 6, result.Summary.TotalDocuments)
	assert.Equal(t, 1, result.Summary.PassedDocuments)
	assert.Equal(t, 4, result.Summary.FailedDocuments)
	assert.Equal(t, 1, result.Summary.ErrorDocuments)
	assert.True(t, result.HasFailures())

	// Results stay at their document's index regardless of scheduling.
	assert.Equal(t, StatusPass, result.Documents[0].Status)
	assert.Equal(t, KindPrecondition, result.Documents[1].Kind)
	assert.Equal(t, KindMissingFields, result.Documents[2].Kind)
	assert.Equal(t, KindTypeMismatch, result.Documents[3].Kind)
	assert.Equal(t, KindUnknownField, result.Documents[4].Kind)
	assert.Equal(t, KindUnknownRecord, result.Documents[5].Kind)
	assert.Equal(t, StatusError, result.Documents[5].Status)
}

func TestRunner_SingleWorkerDeterministic(t *testing.T) {
	runner := testRunner(t, 1)

	docs := []config.Document{
		{Record: "Person", Values: validPerson()},
		{Record: "Person", Values: map[string]any{"name": "JAMES"}},
	}

	result, err := runner.Run(context.Background(), docs)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Documents[0].Index)
	assert.Equal(t, 1, result.Documents[1].Index)
	assert.Equal(t, StatusPass, result.Documents[0].Status)
	assert.Equal(t, StatusFail, result.Documents[1].Status)
}

func TestRunner_EmptyBatch(t *testing.T) {
	runner := testRunner(t, 4)

	result, err := runner.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Summary.TotalDocuments)
	assert.False(t, result.HasFailures())
}

func TestRunner_CancelledContext(t *testing.T) {
	runner := testRunner(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := []config.Document{{Record: "Person", Values: validPerson()}}

	_, err := runner.Run(ctx, docs)
	assert.ErrorIs(t, err, context.Canceled)
}
