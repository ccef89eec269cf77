package site

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"giraffe/internal/config"
	"giraffe/internal/fileutil"
	"giraffe/internal/services"
	"giraffe/internal/tracks"
)

//go:embed templates/*.html
var defaultTemplates embed.FS

// Renderer emits the static site: one listing page, one detail page per
// track, slug-prefixed image copies, and a pass-through of the assets tree.
type Renderer struct {
	cfg       *config.Config
	logger    *slog.Logger
	templates *template.Template
}

type pageData struct {
	Site    config.Site
	Track   *tracks.Track
	Tracks  []*tracks.Track
	IsTrack bool
}

// New loads templates from the configured templates directory, falling back
// to the embedded defaults when the directory does not exist.
func New(cfg *config.Config, logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("component", "renderer")

	var tmpl *template.Template
	var err error
	if info, statErr := os.Stat(cfg.Paths.TemplatesDir); statErr == nil && info.IsDir() {
		tmpl, err = template.ParseGlob(filepath.Join(cfg.Paths.TemplatesDir, "*.html"))
	} else {
		tmpl, err = template.ParseFS(defaultTemplates, "templates/*.html")
	}
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "renderer", "parse templates", "", err)
	}

	return &Renderer{cfg: cfg, logger: logger, templates: tmpl}, nil
}

// Render writes the full output tree for the given track set. Stale copies
// from prior runs are removed so the tree always reflects exactly this
// build.
func (r *Renderer) Render(list []*tracks.Track) error {
	out := r.cfg.Paths.OutputDir
	if err := r.resetOutputTree(out); err != nil {
		return err
	}

	if err := r.copyAssets(out); err != nil {
		return err
	}

	copied, err := r.copyImages(out, list)
	if err != nil {
		return err
	}
	r.logger.Info("copied images", "count", copied)

	for _, track := range list {
		target := filepath.Join(out, "tracks", track.Slug+".html")
		if err := r.renderPage(target, "track.html", pageData{Site: r.cfg.Site, Track: track, IsTrack: true}); err != nil {
			return err
		}
	}
	r.logger.Info("generated track pages", "count", len(list))

	if err := r.renderPage(filepath.Join(out, "index.html"), "index.html", pageData{Site: r.cfg.Site, Tracks: list}); err != nil {
		return err
	}
	r.logger.Info("generated index page")

	return nil
}

func (r *Renderer) resetOutputTree(out string) error {
	for _, sub := range []string{"tracks", "covers", "assets"} {
		if err := os.RemoveAll(filepath.Join(out, sub)); err != nil {
			return fmt.Errorf("remove stale %s: %w", sub, err)
		}
	}
	for _, sub := range []string{"", "tracks", "covers"} {
		if err := os.MkdirAll(filepath.Join(out, sub), 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	return nil
}

func (r *Renderer) copyAssets(out string) error {
	src := r.cfg.Paths.AssetsDir
	info, err := os.Stat(src)
	if err != nil || !info.IsDir() {
		return nil
	}

	dst := filepath.Join(out, "assets")
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return fileutil.CopyFile(path, target)
	})
	if err != nil {
		return fmt.Errorf("copy assets: %w", err)
	}
	r.logger.Info("copied assets", "from", src)
	return nil
}

func (r *Renderer) copyImages(out string, list []*tracks.Track) (int, error) {
	count := 0
	for _, track := range list {
		names := track.ImageFilenames()
		for i, img := range track.Images {
			// Slug prefix avoids collisions between identically named
			// covers from different tracks.
			target := filepath.Join(out, "covers", names[i])
			if err := fileutil.CopyFileVerified(img, target); err != nil {
				return count, fmt.Errorf("copy image %s: %w", img, err)
			}
			count++
		}
	}
	return count, nil
}

func (r *Renderer) renderPage(target, templateName string, data pageData) error {
	file, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	defer file.Close()

	if err := r.templates.ExecuteTemplate(file, templateName, data); err != nil {
		return fmt.Errorf("render %s: %w", templateName, err)
	}
	return file.Close()
}
