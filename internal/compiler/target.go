package compiler

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Target -linecomment -output=target_string.go

// Target selects the adapter a compile dispatches to.
type Target int

const (
	_ Target = iota // zero value is not a valid target

	TargetWeb    // web
	TargetNative // native
)

// ErrUnknownTarget is returned for targets other than TargetWeb and TargetNative.
var ErrUnknownTarget = errors.New("unknown render target")

// Targets lists every valid target.
func Targets() []Target {
	return []Target{TargetWeb, TargetNative}
}

// Valid reports whether t is a known target.
func (t Target) Valid() bool {
	return t == TargetWeb || t == TargetNative
}

// ParseTarget parses a target name ("web" or "native", case-insensitive).
func ParseTarget(s string) (Target, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	for _, t := range Targets() {
		if t.String() == name {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q (valid: web, native)", ErrUnknownTarget, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Target) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTarget, int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Target) UnmarshalText(text []byte) error {
	parsed, err := ParseTarget(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}
