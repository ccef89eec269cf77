package tracks

import (
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Track is one published unit of content: metadata, a lossless master, its
// images, the derived MP3, and the remote URLs once published.
//
// A Track is constructed by the scanner, mutated in place by the encoder and
// publisher, and read-only for the renderer. Either all required pieces are
// present (title, one WAV master, at least one image) or the track is
// excluded from the build entirely.
type Track struct {
	Slug string
	Dir  string

	Title    string
	Year     int
	Category string
	// Status defaults to "final" when the content file does not set it.
	Status   string
	Tags     []string
	Created  string
	Modified string
	Body     template.HTML

	// SourcePath is the lossless WAV master.
	SourcePath string
	// CompressedPath is set once the MP3 artifact exists.
	CompressedPath string
	// Images are sorted by filename; the first entry is the cover.
	Images []string

	// Remote URLs, set only after a successful publish decision.
	CompressedURL string
	SourceURL     string
}

// Cover returns the path of the primary cover image.
func (t *Track) Cover() string {
	if len(t.Images) == 0 {
		return ""
	}
	return t.Images[0]
}

// CoverFilename returns the slug-prefixed output name of the cover image.
func (t *Track) CoverFilename() string {
	cover := t.Cover()
	if cover == "" {
		return ""
	}
	return fmt.Sprintf("%s-%s", t.Slug, filepath.Base(cover))
}

// ImageFilenames returns the slug-prefixed output names of all images.
func (t *Track) ImageFilenames() []string {
	names := make([]string, 0, len(t.Images))
	for _, img := range t.Images {
		names = append(names, fmt.Sprintf("%s-%s", t.Slug, filepath.Base(img)))
	}
	return names
}

// CompressedKey returns the remote key for the MP3 artifact.
func (t *Track) CompressedKey() string {
	return fmt.Sprintf("%s/%s.mp3", t.Slug, t.Slug)
}

// SourceKey returns the remote key for the WAV master.
func (t *Track) SourceKey() string {
	return fmt.Sprintf("%s/%s.wav", t.Slug, t.Slug)
}

var titleCaser = cases.Title(language.English)

// TitleFromSlug derives a display title from a directory name, for listings
// of directories that were excluded before their metadata could be read.
func TitleFromSlug(slug string) string {
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" {
		return slug
	}
	return titleCaser.String(cleaned)
}
