package schema

// Entry is one resolved schema slot: the declared value type plus descriptor.
type Entry struct {
	Type  ValueType
	Field Field
}

// Schema is the resolved, ordered field set of a record type: every inherited
// field followed by the type's own declarations. Immutable after resolution
// and safe for concurrent readers.
type Schema struct {
	typeName string
	names    []string
	entries  map[string]Entry
}

// TypeName returns the name of the record type the schema belongs to.
func (s *Schema) TypeName() string {
	return s.typeName
}

// FieldNames returns the field names in canonical order (ancestor fields
// before the type's own).
func (s *Schema) FieldNames() []string {
	return append([]string(nil), s.names...)
}

// Entry returns the resolved entry for a field name.
func (s *Schema) Entry(name string) (Entry, bool) {
	e, ok := s.entries[name]
	return e, ok
}

// Has reports whether the schema declares the field name.
func (s *Schema) Has(name string) bool {
	_, ok := s.entries[name]
	return ok
}

// Len returns the number of fields in the schema.
func (s *Schema) Len() int {
	return len(s.names)
}
