// Package record constructs validated, write-once record instances from
// keyword-style values against a resolved schema, and renders them back to
// their canonical textual form.
package record

import (
	"sort"

	"github.com/reglet-dev/fieldset/internal/schema"
)

// Construct validates values against the schema and builds an immutable
// instance. Construction is atomic: any validation failure aborts before a
// single value is bound.
//
// Supplied keys are scanned in sorted order so the reported error is
// deterministic. Unknown keys are rejected first, then each field is checked
// for exact type before its precondition, and only after the full scan are
// missing fields reported, all together.
func Construct(s *schema.Schema, values map[string]any) (*Instance, error) {
	supplied := make([]string, 0, len(values))
	for name := range values {
		supplied = append(supplied, name)
	}
	sort.Strings(supplied)

	for _, name := range supplied {
		if !s.Has(name) {
			return nil, &UnknownFieldError{TypeName: s.TypeName(), Field: name}
		}
	}

	for _, name := range supplied {
		entry, _ := s.Entry(name)
		value := values[name]

		if !entry.Type.Matches(value) {
			return nil, &TypeMismatchError{
				TypeName: s.TypeName(),
				Field:    name,
				Expected: entry.Type,
				Actual:   schema.TypeNameOf(value),
			}
		}
		if !entry.Field.Valid(value) {
			return nil, &PreconditionError{TypeName: s.TypeName(), Field: name, Value: value}
		}
	}

	var missing []string
	for _, name := range s.FieldNames() {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingFieldsError{TypeName: s.TypeName(), Fields: missing}
	}

	bound := make(map[string]any, len(values))
	for name, value := range values {
		bound[name] = value
	}
	return &Instance{schema: s, values: bound}, nil
}
