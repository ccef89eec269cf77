package testsupport

import (
	"path/filepath"
	"testing"

	"giraffe/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.TracksDir = filepath.Join(base, "tracks")
	cfg.Paths.OutputDir = filepath.Join(base, "docs")
	cfg.Paths.TemplatesDir = filepath.Join(base, "templates")
	cfg.Paths.AssetsDir = filepath.Join(base, "assets")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithStorage enables publishing against a fictional bucket.
func WithStorage(bucket, baseURL string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Storage.Bucket = bucket
		cfg.Storage.BaseURL = baseURL
	}
}
