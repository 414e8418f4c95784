package record

import (
	"fmt"
	"strconv"
	"strings"
)

// Render produces the canonical multi-line form of the instance. The format is
// part of the external contract and is stable byte for byte:
//
//	TypeName(
//	  # <label>
//	  <field>=<value>
//
//	  # <label>
//	  <field>=<value>
//	)
//
// Fields appear in schema order (ancestor fields before the type's own).
// Strings are single-quoted; floats always carry a decimal point.
func (i *Instance) Render() string {
	var b strings.Builder
	b.WriteString(i.schema.TypeName())
	b.WriteString("(")
	for _, name := range i.schema.FieldNames() {
		entry, _ := i.schema.Entry(name)
		b.WriteString("\n  # ")
		b.WriteString(entry.Field.Label)
		b.WriteString("\n  ")
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(renderValue(i.values[name]))
		b.WriteString("\n")
	}
	b.WriteString(")")
	return b.String()
}

// String implements fmt.Stringer via the canonical rendering.
func (i *Instance) String() string {
	return i.Render()
}

func renderValue(v any) string {
	switch val := v.(type) {
	case string:
		return "'" + val + "'"
	case float64:
		return renderFloat(val)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// renderFloat keeps a decimal point on integral floats so 24000.0 does not
// collapse to 24000.
func renderFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") && s != "NaN" {
		s += ".0"
	}
	return s
}
