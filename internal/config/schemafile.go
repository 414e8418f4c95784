// Package config provides loading and validation of fieldset schema files and
// value documents. Schema files declare record types in YAML; documents supply
// keyword-style values to construct against them.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SchemaFile is a complete schema declaration: metadata plus an ordered list
// of record type declarations.
type SchemaFile struct {
	Metadata SchemaMetadata `yaml:"schema"`
	Records  []RecordDecl   `yaml:"records"`
}

// SchemaMetadata identifies and versions a schema file.
type SchemaMetadata struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

// RecordDecl declares one record type: its own fields plus the names of the
// record types it inherits fields from. Inherited types must be declared
// earlier in the same file.
type RecordDecl struct {
	Name     string      `yaml:"name"`
	Inherits []string    `yaml:"inherits,omitempty"`
	Fields   []FieldDecl `yaml:"fields"`
}

// FieldDecl declares one field: name, value type, display label, and an
// optional precondition expression evaluated against `value`.
type FieldDecl struct {
	Name         string `yaml:"name"`
	Type         string `yaml:"type"`
	Label        string `yaml:"label"`
	Precondition string `yaml:"precondition,omitempty"`
}

// LoadSchemaFile loads and validates a schema file from a YAML file.
func LoadSchemaFile(path string) (*SchemaFile, error) {
	// Use os.OpenRoot so a schema path cannot traverse out of its directory.
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema directory: %w", err)
	}
	defer root.Close()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema file: %w", err)
	}
	defer file.Close()

	return LoadSchemaFileFromReader(file)
}

// LoadSchemaFileFromReader loads and validates a schema file from an
// io.Reader. Useful for testing with in-memory YAML data.
func LoadSchemaFileFromReader(r io.Reader) (*SchemaFile, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	// Meta-validate the raw document first so malformed files fail with
	// schema-relative locations instead of decode errors.
	if err := validateAgainstMetaSchema(raw); err != nil {
		return nil, err
	}

	var file SchemaFile

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true) // Strict parsing - reject unknown fields

	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := Validate(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

// RecordCount returns the number of record declarations in the file.
func (f *SchemaFile) RecordCount() int {
	return len(f.Records)
}

// GetRecord returns a pointer to the record declaration with the given name,
// or nil if not found.
func (f *SchemaFile) GetRecord(name string) *RecordDecl {
	for i := range f.Records {
		if f.Records[i].Name == name {
			return &f.Records[i]
		}
	}
	return nil
}

// HasRecord checks if a record declaration with the given name exists.
func (f *SchemaFile) HasRecord(name string) bool {
	return f.GetRecord(name) != nil
}
