package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"gallery-compiler/internal/common"
)

// NoIndex marks a diagnostic that is not tied to a single record.
const NoIndex = -1

// Diagnostics holds all diagnostic information from an inspection pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Index is the position of the record this relates to, or NoIndex.
	Index int
	// Field is the record key this relates to (if any).
	Field string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, index int, field string) {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, index, field))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, index int, field string, suggestions ...string) {
	w := newDiagnostic(DiagnosticWarning, code, message, index, field)
	w.Suggestions = suggestions
	d.Warnings = append(d.Warnings, w)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, index int, field string) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, index, field))
}

func newDiagnostic(sev DiagnosticSeverity, code, message string, index int, field string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Index:    index,
		Field:    field,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasWarnings returns true if there are any warning diagnostics.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	return join(d.Errors)
}

// Strict returns a combined error from all errors and warnings, or nil if
// there are neither.
func (d *Diagnostics) Strict() error {
	if d.IsValid() && !d.HasWarnings() {
		return nil
	}

	return join(append(append([]Diagnostic{}, d.Errors...), d.Warnings...))
}

func join(diags []Diagnostic) error {
	parts := make([]string, 0, len(diags))
	for _, e := range diags {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Index != NoIndex {
		prefix = append(prefix, fmt.Sprintf("[#%d]", d.Index))
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, " or "))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
