package encoding

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"giraffe/internal/tracks"
)

// Encoder produces the compressed artifact for a track, skipping work that
// is already up to date.
type Encoder struct {
	client  Client
	timeout time.Duration
	logger  *slog.Logger
}

// New constructs an Encoder around the given client. Each encode runs under
// the supplied timeout.
func New(client Client, timeout time.Duration, logger *slog.Logger) *Encoder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Encoder{client: client, timeout: timeout, logger: logger.With("component", "encoder")}
}

// EncodeTrack ensures <dir>/<slug>.mp3 exists and is fresh, encoding from
// the WAV master when needed. The returned bool reports whether the external
// encoder actually ran. On success the track's CompressedPath is set.
//
// Freshness is a modification-time check only: an artifact newer than its
// source is trusted without hashing.
func (e *Encoder) EncodeTrack(ctx context.Context, t *tracks.Track) (string, bool, error) {
	target := filepath.Join(t.Dir, t.Slug+".mp3")

	fresh, err := artifactFresh(target, t.SourcePath)
	if err != nil {
		return "", false, err
	}
	if fresh {
		e.logger.Info("artifact up to date", "slug", t.Slug, "path", target)
		t.CompressedPath = target
		return target, false, nil
	}

	e.logger.Info("encoding", "slug", t.Slug, "source", t.SourcePath)

	encodeCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		encodeCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	if err := e.client.Encode(encodeCtx, t.SourcePath, target); err != nil {
		return "", true, err
	}

	t.CompressedPath = target
	return target, true, nil
}

func artifactFresh(target, source string) (bool, error) {
	targetInfo, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat artifact: %w", err)
	}
	sourceInfo, err := os.Stat(source)
	if err != nil {
		return false, fmt.Errorf("stat source: %w", err)
	}
	return targetInfo.ModTime().After(sourceInfo.ModTime()), nil
}
