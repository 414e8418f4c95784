package config

import (
	"fmt"

	"github.com/reglet-dev/fieldset/internal/schema"
)

// Registry holds the record types built from one schema file, in declaration
// order. Every type's schema is resolved at build time, so inheritance
// conflicts surface when the file loads, not when an instance is constructed.
// A built registry is read-only and safe for concurrent use.
type Registry struct {
	names []string
	types map[string]*schema.RecordType
}

// BuildRegistry turns a validated schema file into resolved record types.
// Preconditions are compiled once here and shared by every construction.
func BuildRegistry(file *SchemaFile) (*Registry, error) {
	reg := &Registry{
		types: make(map[string]*schema.RecordType, len(file.Records)),
	}

	for _, rec := range file.Records {
		ancestors := make([]*schema.RecordType, 0, len(rec.Inherits))
		for _, parent := range rec.Inherits {
			ancestor, ok := reg.types[parent]
			if !ok {
				return nil, fmt.Errorf("record %s inherits unknown record %q", rec.Name, parent)
			}
			ancestors = append(ancestors, ancestor)
		}

		fields := make([]schema.DeclaredField, 0, len(rec.Fields))
		for _, fd := range rec.Fields {
			vt, err := schema.ParseValueType(fd.Type)
			if err != nil {
				return nil, fmt.Errorf("record %s, field %s: %w", rec.Name, fd.Name, err)
			}

			var pre schema.Precondition
			if fd.Precondition != "" {
				pre, err = CompilePrecondition(fd.Precondition)
				if err != nil {
					return nil, fmt.Errorf("record %s, field %s: %w", rec.Name, fd.Name, err)
				}
			}

			fields = append(fields, schema.DeclaredField{
				Name:  fd.Name,
				Type:  vt,
				Field: schema.Field{Label: fd.Label, Precondition: pre},
			})
		}

		rt := schema.New(rec.Name, ancestors, fields)
		if _, err := rt.Resolve(); err != nil {
			return nil, fmt.Errorf("failed to resolve record %s: %w", rec.Name, err)
		}

		reg.names = append(reg.names, rec.Name)
		reg.types[rec.Name] = rt
	}

	return reg, nil
}

// Lookup returns the record type with the given name.
func (r *Registry) Lookup(name string) (*schema.RecordType, bool) {
	rt, ok := r.types[name]
	return rt, ok
}

// Names returns the record type names in declaration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of registered record types.
func (r *Registry) Len() int {
	return len(r.names)
}
