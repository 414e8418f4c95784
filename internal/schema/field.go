// Package schema defines record types as ordered sets of named, typed fields
// and resolves them, including fields inherited from ancestor record types,
// into immutable schemas shared by every instance of a type.
package schema

// Precondition is a validity predicate evaluated against a supplied value
// after the value has passed its exact type check.
type Precondition func(value any) bool

// Field is the schema-level descriptor for one record field: a human-readable
// label and an optional precondition. It carries no instance value and is
// shared by all instances of the record types that declare it.
type Field struct {
	Label        string
	Precondition Precondition
}

// Valid reports whether v satisfies the field's precondition.
// A nil precondition means every value of the declared type is valid.
func (f Field) Valid(v any) bool {
	if f.Precondition == nil {
		return true
	}
	return f.Precondition(v)
}
