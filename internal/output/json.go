package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter formats values as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// Format writes v as JSON followed by a newline.
func (f *JSONFormatter) Format(v any) error {
	enc := json.NewEncoder(f.writer)
	enc.SetEscapeHTML(false)

	if f.indent {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(v)
}
