package publish

import (
	"context"
	"fmt"
	"log/slog"

	"giraffe/internal/tracks"
)

const (
	contentTypeMP3 = "audio/mpeg"
	contentTypeWAV = "audio/wav"
)

// Publisher uploads track artifacts that the comparator reports as out of
// date and records the resulting public URLs.
type Publisher struct {
	store   Store
	baseURL string
	logger  *slog.Logger
}

// NewPublisher wires a publisher to a store and the public base URL objects
// are served from.
func NewPublisher(store Store, baseURL string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Publisher{store: store, baseURL: baseURL, logger: logger.With("component", "publisher")}
}

// Result summarizes what happened to one track's artifacts.
type Result struct {
	Uploaded int
	Skipped  int
	Failed   int
}

// PublishTrack pushes the MP3 artifact and the WAV master for one track.
// Each artifact is handled independently: a transport failure on one is
// logged and counted but does not stop the other. URL fields are set only
// when the remote copy is known current (freshly uploaded or matching).
func (p *Publisher) PublishTrack(ctx context.Context, t *tracks.Track) Result {
	var result Result

	if url, ok := p.publishArtifact(ctx, t.CompressedKey(), t.CompressedPath, contentTypeMP3, &result); ok {
		t.CompressedURL = url
	}
	if url, ok := p.publishArtifact(ctx, t.SourceKey(), t.SourcePath, contentTypeWAV, &result); ok {
		t.SourceURL = url
	}

	return result
}

func (p *Publisher) publishArtifact(ctx context.Context, key, path, contentType string, result *Result) (string, bool) {
	if path == "" {
		result.Failed++
		p.logger.Warn("artifact missing, skipping upload", "key", key)
		return "", false
	}

	decision, err := Compare(ctx, p.store, key, path, p.logger)
	if err != nil {
		result.Failed++
		p.logger.Error("comparing remote state", "key", key, "error", err)
		return "", false
	}

	if !decision.NeedsUpload() {
		result.Skipped++
		p.logger.Info("remote copy current, skipping upload", "key", key, "decision", decision.Kind.String(), "etag", decision.Tag)
		return p.urlFor(key), true
	}

	p.logger.Info("uploading", "key", key, "decision", decision.Kind.String())
	if err := p.store.Put(ctx, key, path, contentType); err != nil {
		result.Failed++
		p.logger.Error("upload failed", "key", key, "error", err)
		return "", false
	}

	result.Uploaded++
	p.logger.Info("uploaded", "key", key)
	return p.urlFor(key), true
}

func (p *Publisher) urlFor(key string) string {
	return fmt.Sprintf("%s/%s", p.baseURL, key)
}
