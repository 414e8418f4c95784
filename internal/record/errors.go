package record

import (
	"fmt"
	"strings"

	"github.com/reglet-dev/fieldset/internal/schema"
)

// UnknownFieldError indicates a supplied key that is not part of the schema.
type UnknownFieldError struct {
	TypeName string
	Field    string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s: unknown field %q", e.TypeName, e.Field)
}

// TypeMismatchError indicates a supplied value whose dynamic type differs from
// the declared one. Convertible values are still rejected.
type TypeMismatchError struct {
	TypeName string
	Field    string
	Expected schema.ValueType
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: field %q expects %s, got %s", e.TypeName, e.Field, e.Expected, e.Actual)
}

// PreconditionError indicates a correctly typed value rejected by the field's
// validity predicate.
type PreconditionError struct {
	TypeName string
	Field    string
	Value    any
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: field %q = %v failed precondition", e.TypeName, e.Field, e.Value)
}

// MissingFieldsError reports every required field absent from the supplied
// values, not just the first.
type MissingFieldsError struct {
	TypeName string
	Fields   []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: missing fields: %s", e.TypeName, strings.Join(e.Fields, ", "))
}

// ImmutableFieldError indicates a write to a field of an already constructed
// instance. There is no mutation path after construction.
type ImmutableFieldError struct {
	TypeName string
	Field    string
}

func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("%s: cannot modify field %q after construction", e.TypeName, e.Field)
}
