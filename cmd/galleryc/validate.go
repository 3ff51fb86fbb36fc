package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gallery-compiler/internal/diagnostic"
	"gallery-compiler/internal/gallery"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	opts := &configFlags{}

	cmd := &cobra.Command{
		Use:   "validate <gallery.yaml>...",
		Short: "Validate gallery documents without compiling them",
		Long: `Check each gallery document: the document envelope, the format
version and every image record. Lint findings such as unknown keys are
listed; with --strict they make the file invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Apply(cmd, root.config)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0

			for _, path := range args {
				if err := validateFile(path, cfg.Strict, func(line string) {
					fmt.Fprintln(out, line)
				}); err != nil {
					failed++

					fmt.Fprintf(out, "%s: FAIL %v\n", path, err)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d gallery files are invalid", failed, len(args))
			}

			return nil
		},
	}

	opts.registerStrict(cmd)

	return cmd
}

// validateFile checks one document, reporting lint findings and the
// verdict through report.
func validateFile(path string, strict bool, report func(string)) error {
	doc, err := gallery.LoadFile(path)
	if err != nil {
		return err
	}

	diags := gallery.Lint(doc.Images)
	for _, group := range [][]diagnostic.Diagnostic{diags.Errors, diags.Warnings, diags.Infos} {
		for _, d := range group {
			report(fmt.Sprintf("%s: %s: %s", path, d.Severity, d))
		}
	}

	spec, err := gallery.Validate(doc.Images)
	if err != nil {
		return err
	}

	if strict {
		if err := diags.Strict(); err != nil {
			return fmt.Errorf("strict lint failed: %w", err)
		}
	}

	report(fmt.Sprintf("%s: ok (%d images)", path, spec.Len()))

	return nil
}
