package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gallery-compiler/internal/compiler"
	"gallery-compiler/internal/config"
	"gallery-compiler/internal/gallery"
	"gallery-compiler/internal/selection"
)

// configFlags are per-command overrides of config values. Only flags the
// user actually set replace the loaded configuration.
type configFlags struct {
	target  string
	format  string
	columns int
	strict  bool
	filter  string
}

// RegisterFlags adds the override flags to cmd.
func (f *configFlags) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.target, "target", "", "Render target: web, native (default from config: web)")
	cmd.Flags().StringVar(&f.format, "format", "", "Output format: json, yaml, html (default from config: json)")
	cmd.Flags().IntVar(&f.columns, "columns", 0, "Native column count, overrides the document layout")
	f.registerStrict(cmd)
	cmd.Flags().StringVar(&f.filter, "filter", "", "Select images with an expression (e.g. \"hasCaption && width >= 400\")")
}

func (f *configFlags) registerStrict(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Treat lint warnings as errors")
}

// Apply returns cfg with the flags set on cmd applied, validated.
func (f *configFlags) Apply(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	flags := cmd.Flags()

	if flags.Changed("target") {
		cfg.Target = f.target
	}

	if flags.Changed("format") {
		cfg.Format = f.format
	}

	if flags.Changed("columns") {
		cfg.Columns = f.columns
	}

	if flags.Changed("strict") {
		cfg.Strict = f.strict
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// columnsOverride returns the --columns value when it was set, 0 otherwise.
func (f *configFlags) columnsOverride(cmd *cobra.Command) int {
	if cmd.Flags().Changed("columns") {
		return f.columns
	}

	return 0
}

// selector compiles --filter once; nil selects everything.
func (f *configFlags) selector() (*selection.Selector, error) {
	if f.filter == "" {
		return nil, nil
	}

	sel, err := selection.Compile(f.filter)
	if err != nil {
		return nil, fmt.Errorf("invalid --filter expression: %w\nExample: hasCaption && width >= 400", err)
	}

	return sel, nil
}

// loadJob loads one gallery document, lints it and applies the selection.
func loadJob(path string, target compiler.Target, sel *selection.Selector, strict bool) (compiler.Job, error) {
	doc, records, err := loadRecords(path, sel, strict)
	if err != nil {
		return compiler.Job{}, err
	}

	return compiler.Job{
		Name:    path,
		Records: records,
		Target:  target,
		Columns: doc.Layout.Columns,
	}, nil
}

// loadRecords loads a document and returns the records sel selects.
func loadRecords(path string, sel *selection.Selector, strict bool) (*gallery.Document, []gallery.Record, error) {
	doc, err := gallery.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	if err := lintRecords(path, doc.Images, strict); err != nil {
		return nil, nil, err
	}

	records, err := sel.Apply(doc.Images)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	if sel != nil {
		slog.Debug("images selected", "file", path, "filter", sel.String(), "selected", len(records), "total", len(doc.Images))
	}

	return doc, records, nil
}

// lintRecords logs lint findings; in strict mode warnings fail the file.
func lintRecords(path string, records []gallery.Record, strict bool) error {
	diags := gallery.Lint(records)

	for _, d := range diags.Warnings {
		slog.Warn("lint", "file", path, "diagnostic", d.String())
	}

	for _, d := range diags.Infos {
		slog.Debug("lint", "file", path, "diagnostic", d.String())
	}

	if !strict {
		return nil
	}

	if err := diags.Strict(); err != nil {
		return fmt.Errorf("%s: strict lint failed: %w", path, err)
	}

	return nil
}

// openOutput returns stdout, or the file at path when one is given. The
// returned close function reports the file's Close error.
func openOutput(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}

	//nolint:gosec // G304: User-controlled output file path is intentional
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	slog.Info("writing output", "file", path)

	return file, file.Close, nil
}
