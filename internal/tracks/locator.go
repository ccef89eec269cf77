package tracks

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"giraffe/internal/services"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// LocateAssets finds the lossless master and the image set for a track
// directory, updating the track in place. Extension matching is
// case-insensitive and image ordering is lexicographic by filename, so the
// designated cover (the first image) is stable across runs.
func LocateAssets(t *Track) error {
	const op = "locate assets"

	entries, err := os.ReadDir(t.Dir)
	if err != nil {
		return services.Wrap(services.ErrNotFound, "locator", op, t.Dir, err)
	}

	var wavs []string
	var images []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		switch {
		case ext == ".wav":
			wavs = append(wavs, entry.Name())
		default:
			if _, ok := imageExtensions[ext]; ok {
				images = append(images, entry.Name())
			}
		}
	}

	if len(wavs) == 0 {
		return services.Wrap(services.ErrNotFound, "locator", op, "no WAV master in "+t.Dir, nil)
	}
	if len(images) == 0 {
		return services.Wrap(services.ErrNotFound, "locator", op, "no cover image in "+t.Dir, nil)
	}

	sort.Strings(wavs)
	sort.Strings(images)

	t.SourcePath = filepath.Join(t.Dir, wavs[0])
	t.Images = make([]string, 0, len(images))
	for _, img := range images {
		t.Images = append(t.Images, filepath.Join(t.Dir, img))
	}
	return nil
}
