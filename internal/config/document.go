package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DocumentFile is a YAML file carrying one or more value documents to
// construct against a schema's record types.
type DocumentFile struct {
	Documents []Document `yaml:"documents"`
}

// Document supplies keyword-style values for one record construction.
// YAML scalars map directly to the engine's value types (string, int, float,
// bool); no coercion is applied, so a float field must be written with a
// decimal point.
type Document struct {
	Record string         `yaml:"record"`
	Values map[string]any `yaml:"values"`
}

// LoadDocuments loads value documents from a YAML file.
func LoadDocuments(path string) ([]Document, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open document directory: %w", err)
	}
	defer root.Close()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open document file: %w", err)
	}
	defer file.Close()

	return LoadDocumentsFromReader(file)
}

// LoadDocumentsFromReader loads value documents from an io.Reader.
func LoadDocumentsFromReader(r io.Reader) ([]Document, error) {
	var file DocumentFile

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true) // Strict parsing - reject unknown fields

	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(file.Documents) == 0 {
		return nil, fmt.Errorf("document file contains no documents")
	}

	for i, doc := range file.Documents {
		if doc.Record == "" {
			return nil, fmt.Errorf("document %d: record name is required", i)
		}
		if doc.Values == nil {
			return nil, fmt.Errorf("document %d (%s): values are required", i, doc.Record)
		}
	}

	return file.Documents, nil
}
