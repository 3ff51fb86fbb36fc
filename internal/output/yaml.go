package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats values as YAML documents.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes v as one YAML document.
func (f *YAMLFormatter) Format(v any) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}
