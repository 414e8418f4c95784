package schema

import "fmt"

// ConflictError indicates that resolving a record type found two ancestors
// declaring the same field name with different value types, without the
// descendant overriding it. It is a schema-definition-time failure.
type ConflictError struct {
	TypeName string
	Field    string
	First    ValueType
	Second   ValueType
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"schema conflict in %s: ancestors declare field %q with incompatible types %s and %s",
		e.TypeName, e.Field, e.First, e.Second,
	)
}

// DuplicateFieldError indicates a record type declares the same field name twice.
type DuplicateFieldError struct {
	TypeName string
	Field    string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("record type %s declares field %q more than once", e.TypeName, e.Field)
}
