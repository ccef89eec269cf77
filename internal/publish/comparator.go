package publish

import (
	"context"
	"crypto/md5" //nolint:gosec // matches the store's non-multipart ETag format
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"giraffe/internal/services"
)

// Kind classifies the comparator's decision.
type Kind int

const (
	// NoRemoteCopy: nothing usable at the key; upload needed.
	NoRemoteCopy Kind = iota
	// SizeMatch: multipart remote tag, sizes equal; upload skipped.
	SizeMatch
	// HashMatch: plain remote tag equals the local content hash; skipped.
	HashMatch
	// Mismatch: remote copy exists but differs; upload needed.
	Mismatch
)

// Decision is the comparator's verdict for one artifact. Tag carries the
// observed remote integrity tag for diagnostics; it is empty when no remote
// state was available.
type Decision struct {
	Kind Kind
	Tag  string
}

// NeedsUpload reports whether the artifact must be transferred.
func (d Decision) NeedsUpload() bool {
	return d.Kind == NoRemoteCopy || d.Kind == Mismatch
}

func (k Kind) String() string {
	switch k {
	case NoRemoteCopy:
		return "no-remote-copy"
	case SizeMatch:
		return "size-match"
	case HashMatch:
		return "hash-match"
	case Mismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Compare decides whether the remote copy at key already matches the local
// file, without downloading it.
//
// Multipart tags (detectable by the "-" part-count suffix a plain content
// hash never contains) cannot be checked for content equality cheaply, so
// only sizes are compared. A changed file of identical size is therefore
// skipped; that approximation is accepted rather than storing a secondary
// hash. Store query failures other than not-found bias toward uploading: a
// redundant transfer beats silently skipping a required one.
func Compare(ctx context.Context, store Store, key, localPath string, logger *slog.Logger) (Decision, error) {
	info, err := store.Head(ctx, key)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return Decision{Kind: NoRemoteCopy}, nil
		}
		logger.Warn("remote state query failed, uploading anyway", "component", "publisher", "key", key, "error", err)
		return Decision{Kind: NoRemoteCopy}, nil
	}

	if isMultipartTag(info.ETag) {
		localInfo, err := os.Stat(localPath)
		if err != nil {
			return Decision{}, err
		}
		if localInfo.Size() == info.Size {
			return Decision{Kind: SizeMatch, Tag: info.ETag}, nil
		}
		return Decision{Kind: Mismatch, Tag: info.ETag}, nil
	}

	localHash, err := fileMD5(localPath)
	if err != nil {
		return Decision{}, err
	}
	if localHash == info.ETag {
		return Decision{Kind: HashMatch, Tag: info.ETag}, nil
	}
	return Decision{Kind: Mismatch, Tag: info.ETag}, nil
}

func isMultipartTag(tag string) bool {
	return strings.Contains(tag, "-")
}

func fileMD5(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hasher := md5.New() //nolint:gosec
	if _, err := io.Copy(hasher, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
