package gallery

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=ErrorKind -trimprefix=Kind -output=errorkind_string.go

// ErrorKind classifies a ValidationError.
type ErrorKind int

const (
	_ ErrorKind = iota // zero value is not a valid kind

	KindEmptySequence
	KindMissingSource
	KindInvalidDimension
	KindInvalidCaption
)

// NoIndex is the ValidationError index for failures not tied to a record.
const NoIndex = -1

// Sentinel errors, one per ErrorKind. A *ValidationError unwraps to the
// sentinel of its kind.
var (
	ErrEmptySequence    = errors.New("gallery has no images")
	ErrMissingSource    = errors.New("image source is missing or empty")
	ErrInvalidDimension = errors.New("image dimension must be a positive integer")
	ErrInvalidCaption   = errors.New("image caption must be a string")
)

// ValidationError reports why a set of records is not a valid gallery.
type ValidationError struct {
	// Kind of failure.
	Kind ErrorKind
	// Index of the offending record, or NoIndex.
	Index int
	// Field is the record key at fault (if any).
	Field string
	// Value is the rejected value (if any).
	Value any
}

func (e *ValidationError) Error() string {
	where := "gallery"
	if e.Index != NoIndex {
		where = fmt.Sprintf("image %d", e.Index)
	}

	if e.Field == "" {
		return fmt.Sprintf("validation failed at %s: %s: %v", where, e.Kind, e.Unwrap())
	}

	return fmt.Sprintf("validation failed at %s: %s: %s: %v (got %#v)", where, e.Kind, e.Field, e.Unwrap(), e.Value)
}

// Unwrap returns the sentinel error for the kind.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case KindEmptySequence:
		return ErrEmptySequence
	case KindMissingSource:
		return ErrMissingSource
	case KindInvalidDimension:
		return ErrInvalidDimension
	case KindInvalidCaption:
		return ErrInvalidCaption
	default:
		return nil
	}
}

func newValidationError(kind ErrorKind, index int, field string, value any) *ValidationError {
	return &ValidationError{
		Kind:  kind,
		Index: index,
		Field: field,
		Value: value,
	}
}
