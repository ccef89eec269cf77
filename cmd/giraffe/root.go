package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var staticOnly bool

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "giraffe",
		Short:         "Music portfolio site builder",
		Long:          "Giraffe scans track directories, encodes and publishes audio, and renders a static portfolio site.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, ctx, staticOnly)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVar(&staticOnly, "static-only", false, "Only regenerate the site; skip encoding and uploads")

	rootCmd.AddCommand(newBuildCommand(ctx))
	rootCmd.AddCommand(newTracksCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
