package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"gallery-compiler/internal/compiler"
	"gallery-compiler/internal/config"
	"gallery-compiler/internal/output"
)

type compileOptions struct {
	configFlags

	outFile string
	compact bool
}

// namedOutput pairs a compiled gallery with its source file when several
// files are written as one document.
type namedOutput struct {
	File   string          `json:"file" yaml:"file"`
	Output compiler.Output `json:"output" yaml:"output"`
}

func newCompileCmd(root *rootOptions) *cobra.Command {
	opts := &compileOptions{}

	cmd := &cobra.Command{
		Use:   "compile <gallery.yaml>...",
		Short: "Compile gallery documents into render instructions",
		Long: `Validate each gallery document and compile it for one render target.

Targets:
  web      ordered div/img/span node descriptors (json, yaml or html)
  native   grid descriptor with a column count and ordered items (json or yaml)

Files are compiled concurrently. A file that fails validation is reported
and the remaining files are still written.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Apply(cmd, root.config)
			if err != nil {
				return err
			}

			return runCompile(cmd.Context(), cmd.OutOrStdout(), cfg, opts, opts.columnsOverride(cmd), args)
		},
	}

	opts.RegisterFlags(cmd)
	cmd.Flags().StringVarP(&opts.outFile, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "Write compact JSON")

	return cmd
}

// runCompile compiles every file in paths. A file that fails to load or
// compile is logged and counted; the other files are still written.
func runCompile(ctx context.Context, stdout io.Writer, cfg config.Config, opts *compileOptions, columns int, paths []string) (err error) {
	target, err := compiler.ParseTarget(cfg.Target)
	if err != nil {
		return err
	}

	if cfg.Format == "html" && target != compiler.TargetWeb {
		return fmt.Errorf("--format html: %w", output.ErrHTMLNeedsWeb)
	}

	sel, err := opts.selector()
	if err != nil {
		return err
	}

	results := make([]compiler.Result, len(paths))
	jobs := make([]compiler.Job, 0, len(paths))
	// positions maps each job back to its file's slot in results.
	positions := make([]int, 0, len(paths))

	for i, path := range paths {
		job, loadErr := loadJob(path, target, sel, cfg.Strict)
		if loadErr != nil {
			results[i] = compiler.Result{Name: path, Err: loadErr}
			continue
		}

		if columns > 0 {
			job.Columns = columns
		}

		jobs = append(jobs, job)
		positions = append(positions, i)
	}

	slog.Debug("compiling", "files", len(jobs), "target", target, "concurrency", cfg.Concurrency)

	comp := compiler.New(cfg.CompilerConfig(), compiler.WithLogger(slog.Default()))

	compiled, err := comp.CompileAll(ctx, jobs)
	if err != nil {
		return fmt.Errorf("compile cancelled: %w", err)
	}

	for j, r := range compiled {
		results[positions[j]] = r
	}

	writer, closeOutput, err := openOutput(stdout, opts.outFile)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := closeOutput(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if err := writeResults(writer, cfg.Format, !opts.compact, results); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	failed := 0

	for _, r := range results {
		if r.Err != nil {
			failed++

			slog.Error("compile failed", "file", r.Name, "error", r.Err)

			continue
		}

		slog.Debug("compiled", "file", r.Name, "images", r.Output.Len())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d galleries failed to compile", failed, len(results))
	}

	return nil
}

// writeResults writes the successful outputs. A single file is written as
// its bare output; several files become one list of namedOutput, except for
// html which is concatenated markup.
func writeResults(w io.Writer, format string, indent bool, results []compiler.Result) error {
	formatter, err := output.NewFormatterFactory().Create(format, w, output.Options{Indent: indent})
	if err != nil {
		return err
	}

	named := make([]namedOutput, 0, len(results))

	for _, r := range results {
		if r.Err == nil {
			named = append(named, namedOutput{File: r.Name, Output: r.Output})
		}
	}

	if len(named) == 0 {
		return nil
	}

	if len(results) > 1 && format != "html" {
		return formatter.Format(named)
	}

	for _, n := range named {
		if err := formatter.Format(n.Output); err != nil {
			return err
		}
	}

	return nil
}
