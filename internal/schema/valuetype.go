package schema

import (
	"fmt"
	"reflect"
)

// ValueType is an exact runtime type tag for field values. A supplied value
// matches only if its dynamic type is identical to the declared one; there is
// no assignability or numeric widening (an int is rejected where a float is
// declared).
type ValueType struct {
	rt reflect.Type
}

// Built-in value types usable from schema files.
var (
	String = TypeOf[string]()
	Int    = TypeOf[int]()
	Float  = TypeOf[float64]()
	Bool   = TypeOf[bool]()
)

// TypeOf returns the ValueType for T.
func TypeOf[T any]() ValueType {
	return ValueType{rt: reflect.TypeFor[T]()}
}

// ParseValueType maps a schema-file type name to its ValueType.
func ParseValueType(name string) (ValueType, error) {
	switch name {
	case "string":
		return String, nil
	case "int":
		return Int, nil
	case "float":
		return Float, nil
	case "bool":
		return Bool, nil
	default:
		return ValueType{}, fmt.Errorf("unknown value type %q (supported: string, int, float, bool)", name)
	}
}

// Matches reports whether v's dynamic type is exactly this type.
func (t ValueType) Matches(v any) bool {
	return reflect.TypeOf(v) == t.rt
}

// IsZero reports whether the type tag is unset.
func (t ValueType) IsZero() bool {
	return t.rt == nil
}

// String returns the Go name of the underlying type.
func (t ValueType) String() string {
	if t.rt == nil {
		return "<nil>"
	}
	return t.rt.String()
}

// TypeNameOf returns the Go type name of a value, for error reporting.
func TypeNameOf(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
