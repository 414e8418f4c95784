package record

import "github.com/reglet-dev/fieldset/internal/schema"

// Instance is one fully bound, write-once record value. Instances are only
// produced by Construct, are immutable afterwards, and are safe to share
// across goroutines without synchronization.
type Instance struct {
	schema *schema.Schema
	values map[string]any
}

// Schema returns the resolved schema the instance conforms to.
func (i *Instance) Schema() *schema.Schema {
	return i.schema
}

// Get returns the bound value for a field name. The second return is false
// only for names outside the instance's schema; every schema field is bound.
func (i *Instance) Get(name string) (any, bool) {
	v, ok := i.values[name]
	return v, ok
}

// Set always fails: fields cannot be rebound once the instance is constructed.
func (i *Instance) Set(name string, _ any) error {
	return &ImmutableFieldError{TypeName: i.schema.TypeName(), Field: name}
}
