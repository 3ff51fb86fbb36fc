package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"gallery-compiler/internal/compiler"
	"gallery-compiler/internal/output"
)

func newPlanCmd(root *rootOptions) *cobra.Command {
	opts := &configFlags{}

	cmd := &cobra.Command{
		Use:   "plan <gallery.yaml>",
		Short: "Print the target-neutral render plan of a gallery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Apply(cmd, root.config)
			if err != nil {
				return err
			}

			if cfg.Format == "html" {
				return errors.New("--format html is not available for plans, use json or yaml")
			}

			sel, err := opts.selector()
			if err != nil {
				return err
			}

			_, records, err := loadRecords(args[0], sel, cfg.Strict)
			if err != nil {
				return err
			}

			p, err := compiler.New(cfg.CompilerConfig()).Plan(records)
			if err != nil {
				return err
			}

			slog.Debug("render plan built", "file", args[0], "slots", p.Len())

			formatter, err := output.NewFormatterFactory().Create(cfg.Format, cmd.OutOrStdout(), output.Options{Indent: true})
			if err != nil {
				return err
			}

			return formatter.Format(p)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: json, yaml (default from config: json)")
	opts.registerStrict(cmd)
	cmd.Flags().StringVar(&opts.filter, "filter", "", "Select images with an expression")

	return cmd
}
