package tracks

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"giraffe/internal/services"
)

// Skipped records a directory that was excluded from the build and why.
type Skipped struct {
	Slug   string
	Reason string
}

// Scan walks the tracks root and builds a Track per valid subdirectory.
// Invalid directories are logged, collected in the skipped list, and never
// reach the renderer. The placeholder example-track directory is ignored.
// A missing root or zero valid tracks is the caller's problem to treat as
// fatal; Scan itself only fails when the root cannot be read.
func Scan(root string, logger *slog.Logger) ([]*Track, []Skipped, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil, services.Wrap(services.ErrNotFound, "scanner", "read tracks directory", root, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var valid []*Track
	var skipped []Skipped
	for _, name := range names {
		if name == "example-track" {
			continue
		}

		track := &Track{Slug: name, Dir: filepath.Join(root, name)}
		if err := LoadMetadata(track); err != nil {
			logger.Warn("skipping track", "component", "scanner", "slug", name, "error", err)
			skipped = append(skipped, Skipped{Slug: name, Reason: err.Error()})
			continue
		}
		if err := LocateAssets(track); err != nil {
			logger.Warn("skipping track", "component", "scanner", "slug", name, "error", err)
			skipped = append(skipped, Skipped{Slug: name, Reason: err.Error()})
			continue
		}

		valid = append(valid, track)
		logger.Info("loaded track", "component", "scanner", "slug", name, "title", track.Title)
	}

	return valid, skipped, nil
}
