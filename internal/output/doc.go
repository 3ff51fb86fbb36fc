// Package output serializes compile results for the CLI: JSON, YAML, or
// HTML markup for web instructions.
package output
