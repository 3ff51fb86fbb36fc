package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"gallery-compiler/internal/config"
)

// rootOptions holds global flags and the configuration loaded for the run.
type rootOptions struct {
	cfgFile string
	verbose bool
	config  config.Config
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "galleryc",
		Short: "Compile declarative image galleries for web and native targets",
		Long: `galleryc reads a platform-neutral gallery document (image sources,
optional captions and dimensions) and compiles it into render instructions:
ordered DOM node descriptors for the web target, or a grid adapter
descriptor for the native target.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)

			cfg, err := config.Load(opts.cfgFile)
			if err != nil {
				return err
			}

			opts.config = cfg
			slog.Debug("configuration loaded", "target", cfg.Target, "format", cfg.Format, "columns", cfg.Columns)

			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.galleryc.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(
		newCompileCmd(opts),
		newPlanCmd(opts),
		newValidateCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
