// Package common holds small helpers shared by the gallery packages.
package common

// UnknownStr is the String() value of an out-of-range enum.
const UnknownStr = "unknown"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Clone returns a pointer to a copy of *p, or nil when p is nil.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}
