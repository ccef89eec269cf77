package tracks

import (
	"bytes"
	"errors"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	"giraffe/internal/services"
)

const frontMatterDelimiter = "---"

// frontMatter mirrors the header block of a content file. Every field except
// Title is optional.
type frontMatter struct {
	Title    string   `yaml:"title"`
	Year     int      `yaml:"year"`
	Category string   `yaml:"category"`
	Status   string   `yaml:"status"`
	Tags     []string `yaml:"tags"`
	Created  string   `yaml:"created"`
	Modified string   `yaml:"modified"`
}

var markdown = goldmark.New()

// LoadMetadata locates the track's content file, parses its front matter,
// and renders the markdown body. The track is updated in place. Errors are
// tagged ErrValidation when the content is malformed and ErrNotFound when no
// content file exists; either excludes the track from the build.
func LoadMetadata(t *Track) error {
	const op = "load metadata"

	contentPath, err := findContentFile(t.Dir)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(contentPath)
	if err != nil {
		return services.Wrap(services.ErrValidation, "loader", op, "read content file", err)
	}

	header, body, err := splitFrontMatter(string(raw))
	if err != nil {
		return services.Wrap(services.ErrValidation, "loader", op, filepath.Base(contentPath), err)
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return services.Wrap(services.ErrValidation, "loader", op, "parse front matter", err)
	}
	if strings.TrimSpace(fm.Title) == "" {
		return services.Wrap(services.ErrValidation, "loader", op, "front matter has no title", nil)
	}

	var rendered bytes.Buffer
	if err := markdown.Convert([]byte(strings.TrimSpace(body)), &rendered); err != nil {
		return services.Wrap(services.ErrValidation, "loader", op, "render body", err)
	}

	t.Title = strings.TrimSpace(fm.Title)
	t.Year = fm.Year
	t.Category = strings.TrimSpace(fm.Category)
	t.Status = strings.TrimSpace(fm.Status)
	if t.Status == "" {
		t.Status = "final"
	}
	t.Tags = fm.Tags
	t.Created = strings.TrimSpace(fm.Created)
	t.Modified = strings.TrimSpace(fm.Modified)
	t.Body = template.HTML(rendered.String())
	return nil
}

func findContentFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", services.Wrap(services.ErrNotFound, "loader", "find content file", dir, err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			candidates = append(candidates, entry.Name())
		}
	}
	if len(candidates) == 0 {
		return "", services.Wrap(services.ErrNotFound, "loader", "find content file", "no .md file in "+dir, nil)
	}
	sort.Strings(candidates)
	return filepath.Join(dir, candidates[0]), nil
}

// splitFrontMatter separates a content file into its YAML header and
// markdown body. The file must start with the delimiter line and contain a
// closing delimiter after the header block.
func splitFrontMatter(content string) (header, body string, err error) {
	if !strings.HasPrefix(content, frontMatterDelimiter) {
		return "", "", errors.New("no front matter block")
	}
	parts := strings.SplitN(content, frontMatterDelimiter, 3)
	if len(parts) < 3 {
		return "", "", errors.New("unterminated front matter block")
	}
	return parts[1], parts[2], nil
}
