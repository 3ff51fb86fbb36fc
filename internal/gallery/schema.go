package gallery

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed document.schema.json
var documentSchemaJSON string

const documentSchemaURL = "document.schema.json"

var compileDocumentSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(documentSchemaURL, strings.NewReader(documentSchemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add document schema: %w", err)
	}

	return compiler.Compile(documentSchemaURL)
})

// ValidateDocument checks the envelope of a decoded gallery document: a
// mapping with an "images" list of records, an optional version and an
// optional layout. Individual image records are left to Validate so that
// image-level failures keep their ValidationError kind.
func ValidateDocument(doc any) error {
	schema, err := compileDocumentSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return formatSchemaError(verr)
		}

		return fmt.Errorf("document validation failed: %w", err)
	}

	return nil
}

// formatSchemaError flattens a schema error tree into one readable error.
func formatSchemaError(err *jsonschema.ValidationError) error {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}

			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}

		for _, cause := range e.Causes {
			collect(cause)
		}
	}

	collect(err)

	if len(messages) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDocument, err.Message)
	}

	return fmt.Errorf("%w:\n    - %s", ErrInvalidDocument, strings.Join(messages, "\n    - "))
}
