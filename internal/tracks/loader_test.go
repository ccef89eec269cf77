package tracks

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"giraffe/internal/services"
)

func writeContent(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadMetadataParsesFrontMatterAndBody(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "info.md", `---
title: My Song
year: 2023
category: ambient
tags:
  - drone
  - tape
created: 2023-01-02
---
Recorded on a **four-track**.
`)

	track := &Track{Slug: "my-song", Dir: dir}
	if err := LoadMetadata(track); err != nil {
		t.Fatalf("LoadMetadata returned error: %v", err)
	}
	if track.Title != "My Song" {
		t.Fatalf("unexpected title %q", track.Title)
	}
	if track.Year != 2023 || track.Category != "ambient" {
		t.Fatalf("unexpected metadata: %+v", track)
	}
	if track.Status != "final" {
		t.Fatalf("status should default to final, got %q", track.Status)
	}
	if len(track.Tags) != 2 || track.Tags[0] != "drone" {
		t.Fatalf("unexpected tags %v", track.Tags)
	}
	if !strings.Contains(string(track.Body), "<strong>four-track</strong>") {
		t.Fatalf("body not rendered as HTML: %q", track.Body)
	}
}

func TestLoadMetadataMissingTitle(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "info.md", "---\nyear: 2023\n---\nbody\n")

	err := LoadMetadata(&Track{Slug: "x", Dir: dir})
	if err == nil {
		t.Fatal("expected error for missing title")
	}
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoadMetadataNoContentFile(t *testing.T) {
	err := LoadMetadata(&Track{Slug: "x", Dir: t.TempDir()})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestLoadMetadataMalformedFrontMatter(t *testing.T) {
	for name, content := range map[string]string{
		"no delimiter": "title: My Song\n\nbody\n",
		"unterminated": "---\ntitle: My Song\nbody without closing\n",
		"bad yaml":     "---\ntitle: [unclosed\n---\nbody\n",
	} {
		dir := t.TempDir()
		writeContent(t, dir, "info.md", content)
		if err := LoadMetadata(&Track{Slug: "x", Dir: dir}); !errors.Is(err, services.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestLoadMetadataPicksFirstContentFile(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "b.md", "---\ntitle: Second\n---\n")
	writeContent(t, dir, "a.md", "---\ntitle: First\n---\n")

	track := &Track{Slug: "x", Dir: dir}
	if err := LoadMetadata(track); err != nil {
		t.Fatalf("LoadMetadata returned error: %v", err)
	}
	if track.Title != "First" {
		t.Fatalf("expected lexicographically first content file, got %q", track.Title)
	}
}

func TestTitleFromSlug(t *testing.T) {
	if got := TitleFromSlug("my-first-song"); got != "My First Song" {
		t.Fatalf("unexpected derived title %q", got)
	}
	if got := TitleFromSlug(""); got != "" {
		t.Fatalf("empty slug should stay empty, got %q", got)
	}
}
