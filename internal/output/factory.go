package output

import (
	"fmt"
	"io"
)

// Formatter writes one value to its writer.
type Formatter interface {
	Format(v any) error
}

// Options tune formatter output.
type Options struct {
	// Indent pretty-prints JSON.
	Indent bool
}

// FormatterFactory creates formatters by name.
type FormatterFactory struct{}

// NewFormatterFactory creates a new formatter factory.
func NewFormatterFactory() *FormatterFactory {
	return &FormatterFactory{}
}

// Create returns a formatter for the given format name.
func (f *FormatterFactory) Create(format string, writer io.Writer, options Options) (Formatter, error) {
	switch format {
	case "json":
		return NewJSONFormatter(writer, options.Indent), nil
	case "yaml":
		return NewYAMLFormatter(writer), nil
	case "html":
		return NewHTMLFormatter(writer), nil
	default:
		return nil, fmt.Errorf(
			"unknown format: %s (supported: %v)",
			format, f.SupportedFormats(),
		)
	}
}

// SupportedFormats returns list of available format names.
func (f *FormatterFactory) SupportedFormats() []string {
	return []string{"json", "yaml", "html"}
}
