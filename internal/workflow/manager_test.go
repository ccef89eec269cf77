package workflow

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"giraffe/internal/testsupport"
)

type countingClient struct {
	calls int
	fail  error
}

func (c *countingClient) Encode(_ context.Context, _, outputPath string) error {
	c.calls++
	if c.fail != nil {
		return c.fail
	}
	return os.WriteFile(outputPath, []byte("mp3"), 0o644)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRunFullBuild(t *testing.T) {
	testsupport.StubBinary(t, "ffmpeg", "#!/bin/sh\nexit 0\n")
	cfg := testsupport.NewConfig(t, testsupport.WithStorage("bucket", "https://cdn.example.com"))
	testsupport.WriteTrackDir(t, cfg.Paths.TracksDir, "my-song", "My Song")
	testsupport.WriteTrackDir(t, cfg.Paths.TracksDir, "other-song", "Other Song")

	client := &countingClient{}
	store := testsupport.NewFakeStore()

	manager, err := NewManager(cfg, discardLogger(),
		WithEncoderClient(client), WithStore(store))
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	summary, err := manager.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if summary.Tracks != 2 || summary.Encoded != 2 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.Uploaded != 4 {
		t.Fatalf("expected 4 uploads (mp3+wav per track), got %+v", summary)
	}
	if client.calls != 2 {
		t.Fatalf("expected one encode per track, got %d", client.calls)
	}

	detail, err := os.ReadFile(filepath.Join(cfg.Paths.OutputDir, "tracks", "my-song.html"))
	if err != nil {
		t.Fatalf("detail page missing: %v", err)
	}
	if !strings.Contains(string(detail), "https://cdn.example.com/my-song/my-song.mp3") {
		t.Fatal("detail page missing published audio URL")
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, "covers", "my-song-cover.jpg")); err != nil {
		t.Fatalf("cover copy missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, "index.html")); err != nil {
		t.Fatalf("index missing: %v", err)
	}
}

func TestRunFailsWithoutValidTracks(t *testing.T) {
	testsupport.StubBinary(t, "ffmpeg", "#!/bin/sh\nexit 0\n")
	cfg := testsupport.NewConfig(t)
	if err := os.MkdirAll(cfg.Paths.TracksDir, 0o755); err != nil {
		t.Fatal(err)
	}

	manager, err := NewManager(cfg, discardLogger(),
		WithEncoderClient(&countingClient{}))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := manager.Run(context.Background(), false); err == nil {
		t.Fatal("expected fatal error for empty track set")
	}
}

func TestRunStaticOnlySkipsEncodeAndPublish(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := testsupport.WriteTrackDir(t, cfg.Paths.TracksDir, "my-song", "My Song")
	// A previously encoded artifact is picked up without re-encoding.
	testsupport.WriteFile(t, filepath.Join(dir, "my-song.mp3"), []byte("mp3"))

	client := &countingClient{}
	store := testsupport.NewFakeStore()
	manager, err := NewManager(cfg, discardLogger(),
		WithEncoderClient(client), WithStore(store))
	if err != nil {
		t.Fatal(err)
	}

	summary, err := manager.Run(context.Background(), true)
	if err != nil {
		t.Fatalf("static-only run returned error: %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("static-only run must not encode, got %d calls", client.calls)
	}
	if len(store.Heads) != 0 || len(store.Puts) != 0 {
		t.Fatalf("static-only run must not touch the store: heads=%v puts=%v", store.Heads, store.Puts)
	}
	if summary.Uploaded != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, "index.html")); err != nil {
		t.Fatalf("static-only run should still render: %v", err)
	}
}

func TestRunStaticOnlyWithoutStoreConfig(t *testing.T) {
	// No storage configuration at all: the manager builds no store and the
	// run completes offline.
	cfg := testsupport.NewConfig(t)
	testsupport.WriteTrackDir(t, cfg.Paths.TracksDir, "my-song", "My Song")

	manager, err := NewManager(cfg, discardLogger(),
		WithEncoderClient(&countingClient{}))
	if err != nil {
		t.Fatal(err)
	}
	if manager.store != nil {
		t.Fatal("expected no store without storage config")
	}
	if _, err := manager.Run(context.Background(), true); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestStaticOnlyRunBuildsNoStoreClient(t *testing.T) {
	// Storage is fully configured, but a static-only run must never get as
	// far as constructing the store client.
	cfg := testsupport.NewConfig(t, testsupport.WithStorage("bucket", "https://cdn.example.com"))
	testsupport.WriteTrackDir(t, cfg.Paths.TracksDir, "my-song", "My Song")

	manager, err := NewManager(cfg, discardLogger(), WithEncoderClient(&countingClient{}))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := manager.Run(context.Background(), true); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if manager.store != nil {
		t.Fatal("static-only run must not construct a store client")
	}
}

func TestRunContinuesPastEncodeFailure(t *testing.T) {
	testsupport.StubBinary(t, "ffmpeg", "#!/bin/sh\nexit 0\n")
	cfg := testsupport.NewConfig(t, testsupport.WithStorage("bucket", "https://cdn.example.com"))
	testsupport.WriteTrackDir(t, cfg.Paths.TracksDir, "bad-song", "Bad Song")
	testsupport.WriteTrackDir(t, cfg.Paths.TracksDir, "good-song", "Good Song")

	// Fail only the first track alphabetically.
	client := &selectiveClient{failSlug: "bad-song"}
	store := testsupport.NewFakeStore()
	manager, err := NewManager(cfg, discardLogger(),
		WithEncoderClient(client), WithStore(store))
	if err != nil {
		t.Fatal(err)
	}

	summary, err := manager.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("per-track failures must not abort the build: %v", err)
	}
	if summary.EncodeFailed != 1 || summary.Encoded != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	// The failed track publishes nothing; the good one publishes both.
	if summary.Uploaded != 2 {
		t.Fatalf("expected 2 uploads, got %+v", summary)
	}
	// Both tracks still render.
	for _, slug := range []string{"bad-song", "good-song"} {
		if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, "tracks", slug+".html")); err != nil {
			t.Fatalf("detail page missing for %s: %v", slug, err)
		}
	}
}

type selectiveClient struct {
	failSlug string
}

func (c *selectiveClient) Encode(_ context.Context, inputPath, outputPath string) error {
	if strings.Contains(inputPath, c.failSlug) {
		return errors.New("encoder exploded")
	}
	return os.WriteFile(outputPath, []byte("mp3"), 0o644)
}

func TestRunFailsWhenEncoderMissing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteTrackDir(t, cfg.Paths.TracksDir, "my-song", "My Song")
	t.Setenv("PATH", t.TempDir())

	manager, err := NewManager(cfg, discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := manager.Run(context.Background(), false); err == nil {
		t.Fatal("expected dependency check failure without ffmpeg on PATH")
	}
}
