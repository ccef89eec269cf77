package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"giraffe/internal/workflow"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var staticOnly bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Encode audio, publish artifacts, and render the site",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, ctx, staticOnly)
		},
	}

	cmd.Flags().BoolVar(&staticOnly, "static-only", false, "Only regenerate the site; skip encoding and uploads")
	return cmd
}

func runBuild(cmd *cobra.Command, ctx *commandContext, staticOnly bool) error {
	cfg, logger, err := ctx.ensure()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	manager, err := workflow.NewManager(cfg, logger)
	if err != nil {
		return fmt.Errorf("prepare build: %w", err)
	}

	summary, err := manager.Run(cmd.Context(), staticOnly)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderBuildSummary(summary))
	if summary.EncodeFailed > 0 || summary.UploadFailed > 0 {
		fmt.Fprintln(out, "Some tracks failed; see the log output above for details.")
	}
	return nil
}

func renderBuildSummary(summary *workflow.Summary) string {
	headers := []string{"Stage", "Done", "Skipped", "Failed"}
	rows := [][]string{
		{"Tracks", strconv.Itoa(summary.Tracks), strconv.Itoa(summary.Excluded), ""},
		{"Encode", strconv.Itoa(summary.Encoded), strconv.Itoa(summary.EncodeSkipped), strconv.Itoa(summary.EncodeFailed)},
		{"Upload", strconv.Itoa(summary.Uploaded), strconv.Itoa(summary.UploadSkipped), strconv.Itoa(summary.UploadFailed)},
	}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight}
	return renderTable(headers, rows, aligns)
}
