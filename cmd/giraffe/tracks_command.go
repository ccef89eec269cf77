package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"giraffe/internal/tracks"
)

func newTracksCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tracks",
		Short: "List the tracks the next build would include",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.ensure()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			valid, skipped, err := tracks.Scan(cfg.Paths.TracksDir, logger)
			if err != nil {
				return fmt.Errorf("scan tracks: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(valid) == 0 && len(skipped) == 0 {
				fmt.Fprintf(out, "No track directories found under %s\n", cfg.Paths.TracksDir)
				return nil
			}

			if len(valid) > 0 {
				rows := make([][]string, 0, len(valid))
				for _, track := range valid {
					year := ""
					if track.Year != 0 {
						year = strconv.Itoa(track.Year)
					}
					rows = append(rows, []string{
						track.Slug,
						track.Title,
						year,
						track.Status,
						strconv.Itoa(len(track.Images)),
						encodedMark(track),
					})
				}
				headers := []string{"Slug", "Title", "Year", "Status", "Images", "MP3"}
				aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignLeft}
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
			}

			if len(skipped) > 0 {
				fmt.Fprintf(out, "Excluded %d directories:\n", len(skipped))
				for _, skip := range skipped {
					// No metadata was readable, so the display title is
					// derived from the directory name.
					fmt.Fprintf(out, "  %s (%s): %s\n", skip.Slug, tracks.TitleFromSlug(skip.Slug), skip.Reason)
				}
			}
			return nil
		},
	}
}

func encodedMark(track *tracks.Track) string {
	artifact := filepath.Join(track.Dir, track.Slug+".mp3")
	if _, err := os.Stat(artifact); err == nil {
		return "yes"
	}
	return "no"
}
