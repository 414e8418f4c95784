package config

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Record and field names must be valid identifiers.
var (
	recordNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	fieldNamePattern  = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
)

// metaSchema is the JSON Schema every schema file document must satisfy before
// structural validation. Draft 2020-12.
const metaSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["schema", "records"],
  "additionalProperties": false,
  "properties": {
    "schema": {
      "type": "object",
      "required": ["name", "version"],
      "additionalProperties": false,
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "version": {"type": "string", "minLength": 1},
        "description": {"type": "string"}
      }
    },
    "records": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "fields"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "inherits": {"type": "array", "items": {"type": "string"}},
          "fields": {
            "type": "array",
            "minItems": 1,
            "items": {
              "type": "object",
              "required": ["name", "type", "label"],
              "additionalProperties": false,
              "properties": {
                "name": {"type": "string", "minLength": 1},
                "type": {"enum": ["string", "int", "float", "bool"]},
                "label": {"type": "string", "minLength": 1},
                "precondition": {"type": "string", "minLength": 1}
              }
            }
          }
        }
      }
    }
  }
}`

// validateAgainstMetaSchema validates the raw YAML document against the
// embedded meta-schema.
func validateAgainstMetaSchema(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource("fieldset-schema.json", bytes.NewReader([]byte(metaSchema))); err != nil {
		return fmt.Errorf("failed to add meta-schema resource: %w", err)
	}

	compiled, err := compiler.Compile("fieldset-schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile meta-schema: %w", err)
	}

	if err := compiled.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return formatMetaSchemaError(validationErr)
		}
		return fmt.Errorf("schema file validation failed: %w", err)
	}

	return nil
}

// formatMetaSchemaError flattens a JSON Schema validation error into a
// readable message.
func formatMetaSchemaError(err *jsonschema.ValidationError) error {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}

	collect(err)

	if len(messages) == 0 {
		return fmt.Errorf("schema file validation failed")
	}

	return fmt.Errorf("schema file validation failed:\n  - %s", strings.Join(messages, "\n  - "))
}

// Validate performs structural validation of a loaded schema file.
// Returns an error describing all failures found.
func Validate(file *SchemaFile) error {
	var errors []string

	if err := validateMetadata(file.Metadata); err != nil {
		errors = append(errors, err.Error())
	}

	if err := validateRecords(file.Records); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("schema validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// validateMetadata validates the schema metadata block.
func validateMetadata(meta SchemaMetadata) error {
	var errors []string

	if meta.Name == "" {
		errors = append(errors, "schema name is required")
	}

	if meta.Version == "" {
		errors = append(errors, "schema version is required")
	} else if _, err := semver.NewVersion(meta.Version); err != nil {
		errors = append(errors, fmt.Sprintf("schema version %q is not valid semver: %v", meta.Version, err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("schema metadata: %s", strings.Join(errors, "; "))
	}

	return nil
}

// validateRecords validates the record declarations. Inherited types must be
// declared earlier in the file, so the ancestor graph is acyclic by
// construction.
func validateRecords(records []RecordDecl) error {
	if len(records) == 0 {
		return fmt.Errorf("at least one record is required")
	}

	declared := make(map[string]bool)

	var errors []string

	for i, rec := range records {
		if err := validateRecord(rec, declared); err != nil {
			errors = append(errors, fmt.Sprintf("record %d: %s", i, err.Error()))
		}

		if declared[rec.Name] {
			errors = append(errors, fmt.Sprintf("duplicate record name: %s", rec.Name))
		}
		declared[rec.Name] = true
	}

	if len(errors) > 0 {
		return fmt.Errorf("records validation:\n    - %s", strings.Join(errors, "\n    - "))
	}

	return nil
}

// validateRecord validates a single record declaration.
func validateRecord(rec RecordDecl, declared map[string]bool) error {
	var errors []string

	if rec.Name == "" {
		errors = append(errors, "record name is required")
	} else if !recordNamePattern.MatchString(rec.Name) {
		errors = append(errors, fmt.Sprintf("record name %q is invalid (must start with an uppercase letter, alphanumeric)", rec.Name))
	}

	for _, parent := range rec.Inherits {
		if parent == rec.Name {
			errors = append(errors, fmt.Sprintf("record %s cannot inherit from itself", rec.Name))
		} else if !declared[parent] {
			errors = append(errors, fmt.Sprintf("record %s inherits unknown record %q (must be declared earlier in the file)", rec.Name, parent))
		}
	}

	if len(rec.Fields) == 0 {
		errors = append(errors, "at least one field is required")
	}

	fieldNames := make(map[string]bool)
	for j, field := range rec.Fields {
		if err := validateField(field); err != nil {
			errors = append(errors, fmt.Sprintf("field %d: %s", j, err.Error()))
		}
		if fieldNames[field.Name] {
			errors = append(errors, fmt.Sprintf("duplicate field name: %s", field.Name))
		}
		fieldNames[field.Name] = true
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}

// validateField validates a single field declaration.
func validateField(field FieldDecl) error {
	var errors []string

	if field.Name == "" {
		errors = append(errors, "field name is required")
	} else if !fieldNamePattern.MatchString(field.Name) {
		errors = append(errors, fmt.Sprintf("field name %q is invalid (must be lower_snake_case)", field.Name))
	}

	switch field.Type {
	case "":
		errors = append(errors, "field type is required")
	case "string", "int", "float", "bool":
	default:
		errors = append(errors, fmt.Sprintf("field type %q is invalid (supported: string, int, float, bool)", field.Type))
	}

	if field.Label == "" {
		errors = append(errors, "field label is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}
