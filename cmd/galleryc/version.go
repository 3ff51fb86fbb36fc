package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gallery-compiler/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of galleryc",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "galleryc version %s\n", version.Get().Full())
		},
	}
}
