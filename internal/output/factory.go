package output

import (
	"fmt"
	"io"
)

// NewFormatter returns a formatter for the given format name.
func NewFormatter(format string, w io.Writer, version string) (Formatter, error) {
	switch format {
	case "table":
		return NewTableFormatter(w), nil
	case "json":
		return NewJSONFormatter(w, true), nil
	case "yaml":
		return NewYAMLFormatter(w), nil
	case "sarif":
		return NewSARIFFormatter(w, version), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: %v)", format, SupportedFormats())
	}
}

// SupportedFormats returns the list of available format names.
func SupportedFormats() []string {
	return []string{"table", "json", "yaml", "sarif"}
}
