package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"giraffe/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check configuration, directories, and external tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := ctx.ensure()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			results, toolStatuses := preflight.Run(cfg)

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(results))
			failed := 0
			for _, result := range results {
				state := "pass"
				if !result.Passed {
					state = "fail"
					failed++
				}
				rows = append(rows, []string{result.Name, state, result.Detail})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Check", "State", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))

			toolRows := make([][]string, 0, len(toolStatuses))
			for _, status := range toolStatuses {
				state := "available"
				if !status.Available {
					state = "missing"
					if !status.Optional {
						failed++
					}
				}
				toolRows = append(toolRows, []string{status.Name, status.Command, state, status.Detail})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Tool", "Command", "State", "Detail"},
				toolRows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))

			for _, warning := range cfg.Warnings() {
				fmt.Fprintf(out, "Warning: %s\n", warning)
			}

			if failed > 0 {
				return fmt.Errorf("%d checks failed", failed)
			}
			return nil
		},
	}
}
