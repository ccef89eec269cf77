package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"giraffe/internal/config"
	"giraffe/internal/deps"
	"giraffe/internal/encoding"
	"giraffe/internal/preflight"
	"giraffe/internal/publish"
	"giraffe/internal/services"
	"giraffe/internal/site"
	"giraffe/internal/tracks"
)

// Manager drives a full build: dependency check, scan, per-track encode and
// publish, then site render. Tracks are processed strictly one at a time;
// each track is owned by the loop iteration touching it.
type Manager struct {
	cfg     *config.Config
	logger  *slog.Logger
	encoder *encoding.Encoder
	store   publish.Store
}

// Option customizes manager construction, mainly for tests.
type Option func(*Manager)

// WithEncoderClient swaps the external encoder client.
func WithEncoderClient(client encoding.Client) Option {
	return func(m *Manager) {
		m.encoder = encoding.New(client, time.Duration(m.cfg.Encoder.TimeoutSeconds)*time.Second, m.logger)
	}
}

// WithStore swaps the object store.
func WithStore(store publish.Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// NewManager builds a manager from configuration. The object store is not
// constructed here; a run that needs it builds it on first use, so
// static-only runs never create a client at all.
func NewManager(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Manager, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := &Manager{cfg: cfg, logger: logger}
	m.encoder = encoding.New(
		encoding.NewCLI(cfg.Encoder.Bitrate, cfg.Encoder.Quality, encoding.WithBinary(cfg.FFmpegBinary())),
		time.Duration(cfg.Encoder.TimeoutSeconds)*time.Second,
		logger,
	)

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Run executes the build. staticOnly bypasses encode and publish entirely
// and re-renders the site from whatever artifacts already exist.
func (m *Manager) Run(ctx context.Context, staticOnly bool) (*Summary, error) {
	runLogger := m.logger.With("run_id", uuid.NewString()[:8])

	for _, warning := range m.cfg.Warnings() {
		runLogger.Warn(warning, "component", "config")
	}

	unlock, err := m.acquireLock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	if !staticOnly {
		if err := m.checkDependencies(); err != nil {
			return nil, err
		}
		if m.store == nil && m.cfg.PublishEnabled() {
			store, err := publish.NewS3Store(ctx, m.cfg)
			if err != nil {
				return nil, err
			}
			m.store = store
		}
	}

	// Publish configuration and tool availability are reported elsewhere;
	// only the filesystem checks matter here.
	checks := []preflight.Result{
		preflight.CheckDirectoryAccess("tracks directory", m.cfg.Paths.TracksDir),
		preflight.CheckDiskSpace("output disk space", m.cfg.Paths.OutputDir),
	}
	for _, check := range checks {
		if !check.Passed {
			runLogger.Warn("preflight check failed", "component", "build",
				"check", check.Name, "detail", check.Detail)
		}
	}

	runLogger.Info("scanning tracks", "component", "build", "dir", m.cfg.Paths.TracksDir)
	valid, skipped, err := tracks.Scan(m.cfg.Paths.TracksDir, runLogger)
	if err != nil {
		return nil, err
	}
	if len(valid) == 0 {
		return nil, services.Wrap(services.ErrValidation, "build", "scan",
			fmt.Sprintf("no valid tracks found in %s", m.cfg.Paths.TracksDir), nil)
	}

	summary := &Summary{Tracks: len(valid), Excluded: len(skipped)}
	runLogger.Info("found tracks", "component", "build", "count", len(valid), "excluded", len(skipped))

	if staticOnly {
		runLogger.Info("static-only mode, skipping encode and publish", "component", "build")
		m.restoreExistingArtifacts(valid)
	} else {
		for i, track := range valid {
			runLogger.Info("processing track", "component", "build",
				"progress", fmt.Sprintf("%d/%d", i+1, len(valid)), "slug", track.Slug, "title", track.Title)
			m.processTrack(ctx, track, summary, runLogger)
		}
	}

	renderer, err := site.New(m.cfg, runLogger)
	if err != nil {
		return nil, err
	}
	if err := renderer.Render(valid); err != nil {
		return nil, services.Wrap(services.ErrValidation, "build", "render", "", err)
	}

	runLogger.Info("build complete", "component", "build", "output", m.cfg.Paths.OutputDir)
	runLogger.Info("serve the output directory locally to preview the site",
		"component", "build", "hint", fmt.Sprintf("python3 -m http.server --directory %s", m.cfg.Paths.OutputDir))
	return summary, nil
}

// processTrack runs encode then publish for one track. Failures exclude
// that track's outputs but never abort the build.
func (m *Manager) processTrack(ctx context.Context, track *tracks.Track, summary *Summary, logger *slog.Logger) {
	_, ran, err := m.encoder.EncodeTrack(ctx, track)
	if err != nil {
		summary.EncodeFailed++
		logger.Error("encoding failed, skipping publish", "component", "build", "slug", track.Slug, "error", err)
		return
	}
	if ran {
		summary.Encoded++
	} else {
		summary.EncodeSkipped++
	}

	if m.store == nil {
		return
	}

	publisher := publish.NewPublisher(m.store, m.cfg.Storage.BaseURL, logger)
	result := publisher.PublishTrack(ctx, track)
	summary.Uploaded += result.Uploaded
	summary.UploadSkipped += result.Skipped
	summary.UploadFailed += result.Failed
}

// restoreExistingArtifacts points tracks at artifacts from earlier builds so
// a static-only render still links local audio where it exists.
func (m *Manager) restoreExistingArtifacts(valid []*tracks.Track) {
	for _, track := range valid {
		artifact := filepath.Join(track.Dir, track.Slug+".mp3")
		if _, err := os.Stat(artifact); err == nil {
			track.CompressedPath = artifact
		}
	}
}

func (m *Manager) checkDependencies() error {
	statuses := deps.CheckBinaries([]deps.Requirement{deps.Encoder(m.cfg.FFmpegBinary())})
	for _, status := range statuses {
		if !status.Available && !status.Optional {
			return services.Wrap(services.ErrExternalTool, "build", "dependency check",
				fmt.Sprintf("%s unavailable: %s", status.Name, status.Detail), nil)
		}
	}
	return nil
}

// acquireLock prevents two builds from mutating the same output tree at
// once.
func (m *Manager) acquireLock() (func(), error) {
	if err := os.MkdirAll(m.cfg.Paths.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	lock := flock.New(filepath.Join(m.cfg.Paths.OutputDir, ".giraffe.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire build lock: %w", err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrValidation, "build", "lock", "another build is already running", nil)
	}
	return func() {
		_ = lock.Unlock()
	}, nil
}
