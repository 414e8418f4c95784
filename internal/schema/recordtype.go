package schema

import "sync"

// DeclaredField pairs a field name with its declared value type and descriptor.
type DeclaredField struct {
	Name  string
	Type  ValueType
	Field Field
}

// RecordType is the declaration of one record shape: a name, zero or more
// ancestor record types whose fields are inherited, and the type's own fields.
// Declarations are made once; the resolved schema is computed at most once and
// shared read-only by every instance of the type.
type RecordType struct {
	name      string
	ancestors []*RecordType
	fields    []DeclaredField

	resolveOnce sync.Once
	resolved    *Schema
	resolveErr  error
}

// New declares a record type. Ancestors are inherited in the given order;
// fields are the type's own declarations, appended after all inherited ones.
func New(name string, ancestors []*RecordType, fields []DeclaredField) *RecordType {
	return &RecordType{
		name:      name,
		ancestors: append([]*RecordType(nil), ancestors...),
		fields:    append([]DeclaredField(nil), fields...),
	}
}

// Name returns the declared type name.
func (t *RecordType) Name() string {
	return t.name
}

// Ancestors returns the declared ancestor types, in declaration order.
func (t *RecordType) Ancestors() []*RecordType {
	return append([]*RecordType(nil), t.ancestors...)
}

// Resolve computes the record type's schema, merging ancestor fields with the
// type's own declarations. The walk happens at most once per type; concurrent
// callers observe the same schema object. Constructing instances afterwards
// never re-walks the ancestor chain.
func (t *RecordType) Resolve() (*Schema, error) {
	t.resolveOnce.Do(func() {
		t.resolved, t.resolveErr = t.resolve()
	})
	return t.resolved, t.resolveErr
}

func (t *RecordType) resolve() (*Schema, error) {
	s := &Schema{
		typeName: t.name,
		entries:  make(map[string]Entry),
	}

	// Inherited fields first, ancestors in declaration order, each ancestor
	// fully resolved. A name contributed twice with the same value type keeps
	// its first position and descriptor (diamond inheritance through a shared
	// base); different value types are a definition-time conflict unless the
	// descendant overrides the field below.
	for _, anc := range t.ancestors {
		ancSchema, err := anc.Resolve()
		if err != nil {
			return nil, err
		}
		for _, name := range ancSchema.names {
			entry := ancSchema.entries[name]
			existing, ok := s.entries[name]
			if !ok {
				s.names = append(s.names, name)
				s.entries[name] = entry
				continue
			}
			if existing.Type != entry.Type && !t.redeclares(name) {
				return nil, &ConflictError{
					TypeName: t.name,
					Field:    name,
					First:    existing.Type,
					Second:   entry.Type,
				}
			}
		}
	}

	// Own fields: new names append at the end; a redeclared inherited name
	// replaces type and descriptor but keeps the ancestor's position, so base
	// fields still render first.
	seen := make(map[string]bool, len(t.fields))
	for _, df := range t.fields {
		if seen[df.Name] {
			return nil, &DuplicateFieldError{TypeName: t.name, Field: df.Name}
		}
		seen[df.Name] = true

		entry := Entry{Type: df.Type, Field: df.Field}
		if _, inherited := s.entries[df.Name]; !inherited {
			s.names = append(s.names, df.Name)
		}
		s.entries[df.Name] = entry
	}

	return s, nil
}

// redeclares reports whether the type's own fields declare the given name.
func (t *RecordType) redeclares(name string) bool {
	for _, df := range t.fields {
		if df.Name == name {
			return true
		}
	}
	return false
}
