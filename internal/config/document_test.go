package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDocuments(t *testing.T) {
	docs, err := LoadDocuments("testdata/documents.yaml")
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, "Person", docs[0].Record)
	assert.Equal(t, "Dog", docs[1].Record)

	// YAML scalars arrive with the engine's exact value types.
	assert.Equal(t, "JAMES", docs[0].Values["name"])
	assert.Equal(t, 110, docs[0].Values["age"])
	assert.Equal(t, 24000.0, docs[0].Values["income"])
	assert.Equal(t, 50.0, docs[1].Values["weight"])
}

func TestLoadDocumentsFromReader_Empty(t *testing.T) {
	_, err := LoadDocumentsFromReader(strings.NewReader("documents: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no documents")
}

func TestLoadDocumentsFromReader_MissingRecord(t *testing.T) {
	doc := `documents:
  - values:
      name: JAMES
`
	_, err := LoadDocumentsFromReader(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record name is required")
}

func TestLoadDocumentsFromReader_MissingValues(t *testing.T) {
	doc := `documents:
  - record: Person
`
	_, err := LoadDocumentsFromReader(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "values are required")
}

func TestLoadDocumentsFromReader_UnknownKeyRejected(t *testing.T) {
	doc := `documents:
  - record: Person
    values:
      name: JAMES
    extra: true
`
	_, err := LoadDocumentsFromReader(strings.NewReader(doc))
	assert.Error(t, err)
}
