package gallery

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is returned when a document envelope fails the schema.
var ErrInvalidDocument = errors.New("invalid gallery document")

// Document is a decoded gallery document. Images are kept as untyped
// records; they become a Spec only through Validate.
type Document struct {
	// Version of the document format.
	Version string
	// Layout carries optional presentation hints.
	Layout Layout
	// Images are the raw image records in document order.
	Images []Record
}

// Layout holds target-neutral layout hints.
type Layout struct {
	// Columns is a preferred column count, 0 when unset.
	Columns int
}

// LoadFile loads and parses a YAML or JSON gallery document.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gallery file %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Parse parses YAML (or JSON) data into a Document. The envelope is checked
// against the document schema and the version gate; image records are not
// validated here.
func Parse(data []byte) (*Document, error) {
	var tree any

	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse gallery YAML: %w", err)
	}

	tree = normalize(tree)
	if tree == nil {
		return nil, fmt.Errorf("%w: document is empty", ErrInvalidDocument)
	}

	if err := ValidateDocument(tree); err != nil {
		return nil, err
	}

	doc := decodeDocument(tree.(map[string]any))

	applyDefaults(doc)

	if err := CheckVersion(doc.Version); err != nil {
		return nil, err
	}

	return doc, nil
}

// decodeDocument maps a schema-checked tree onto a Document.
func decodeDocument(m map[string]any) *Document {
	doc := &Document{}

	if v, ok := m["version"]; ok && v != nil {
		doc.Version = fmt.Sprint(v)
	}

	if layout, ok := m["layout"].(map[string]any); ok {
		if cols, ok := ParseDimension(layout["columns"]); ok {
			doc.Layout.Columns = cols
		}
	}

	images, _ := m["images"].([]any)
	doc.Images = make([]Record, 0, len(images))

	for _, img := range images {
		rec, _ := img.(map[string]any)
		doc.Images = append(doc.Images, rec)
	}

	return doc
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.Version == "" {
		doc.Version = DefaultVersion
	}
}

// normalize rewrites a YAML tree into JSON-compatible values: every mapping
// becomes map[string]any (non-string keys are stringified) and YAML-only
// scalars such as timestamps become strings.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = normalize(val)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[fmt.Sprint(k)] = normalize(val)
		}

		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = normalize(val)
		}

		return out
	case time.Time:
		return x.Format(time.RFC3339)
	case []byte:
		return string(x)
	default:
		return v
	}
}
