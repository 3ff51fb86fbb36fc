// Package diagnostic provides structured warnings, errors, and infos
// reported while inspecting gallery records.
//
// Diagnostics never stop compilation on their own; they describe findings
// the validator tolerates:
//   - Unknown record keys, with the closest known key as a suggestion
//   - Styling keys that the gallery model deliberately does not carry
//   - Document level notes (e.g. a layout hint overriding configuration)
package diagnostic
