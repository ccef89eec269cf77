package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.Site.Title != "My Music Portfolio" {
		t.Fatalf("unexpected default site title %q", cfg.Site.Title)
	}
	if cfg.Encoder.Bitrate != 192 || cfg.Encoder.Quality != 2 {
		t.Fatalf("unexpected encoder defaults: %+v", cfg.Encoder)
	}
	if cfg.Storage.Region != "us-east-1" {
		t.Fatalf("unexpected default region %q", cfg.Storage.Region)
	}
	if cfg.PublishEnabled() {
		t.Fatal("publishing should be disabled by default")
	}
}

func TestLoadAppliesEnvironmentOverrides(t *testing.T) {
	t.Setenv("S3_BUCKET_NAME", "my-bucket")
	t.Setenv("S3_BASE_URL", "https://cdn.example.com/")
	t.Setenv("MP3_BITRATE", "256")
	t.Setenv("SITE_TITLE", "Env Title")

	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent")
	}
	if cfg.Storage.Bucket != "my-bucket" {
		t.Fatalf("bucket override not applied: %q", cfg.Storage.Bucket)
	}
	if cfg.Storage.BaseURL != "https://cdn.example.com" {
		t.Fatalf("base url should be trimmed of trailing slash: %q", cfg.Storage.BaseURL)
	}
	if cfg.Encoder.Bitrate != 256 {
		t.Fatalf("bitrate override not applied: %d", cfg.Encoder.Bitrate)
	}
	if cfg.Site.Title != "Env Title" {
		t.Fatalf("site title override not applied: %q", cfg.Site.Title)
	}
	if !cfg.PublishEnabled() {
		t.Fatal("expected publishing to be enabled")
	}
}

func TestLoadParsesTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "giraffe.toml")
	content := strings.Join([]string{
		"[site]",
		`title = "File Title"`,
		"[encoder]",
		"bitrate = 320",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected file at %s to be used, got %s exists=%v", path, resolved, exists)
	}
	if cfg.Site.Title != "File Title" {
		t.Fatalf("file value not applied: %q", cfg.Site.Title)
	}
	if cfg.Encoder.Bitrate != 320 {
		t.Fatalf("file bitrate not applied: %d", cfg.Encoder.Bitrate)
	}
	// Untouched sections keep defaults.
	if cfg.Paths.TracksDir == "" || !filepath.IsAbs(cfg.Paths.TracksDir) {
		t.Fatalf("tracks dir should default and be absolute, got %q", cfg.Paths.TracksDir)
	}
}

func TestLoadRejectsBadBitrate(t *testing.T) {
	t.Setenv("MP3_BITRATE", "fast")
	if _, _, _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for non-numeric MP3_BITRATE")
	}
}

func TestValidateRejectsQualityOutOfRange(t *testing.T) {
	cfg := Default()
	cfg.Encoder.Quality = 12
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for quality 12")
	}
}

func TestWarningsWhenStorageIncomplete(t *testing.T) {
	cfg := Default()
	warnings := cfg.Warnings()
	if len(warnings) != 1 || !strings.Contains(warnings[0], "will not be uploaded") {
		t.Fatalf("expected storage warning, got %v", warnings)
	}

	cfg.Storage.Bucket = "b"
	cfg.Storage.BaseURL = "https://cdn"
	warnings = cfg.Warnings()
	if len(warnings) != 1 || !strings.Contains(warnings[0], "provider chain") {
		t.Fatalf("expected credentials warning, got %v", warnings)
	}

	cfg.Storage.AccessKeyID = "id"
	cfg.Storage.SecretAccessKey = "secret"
	if warnings = cfg.Warnings(); len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "giraffe.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[storage]") {
		t.Fatal("sample config missing storage section")
	}
}
