package encoding

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"

	"giraffe/internal/services"
)

var commandContext = exec.CommandContext

// Client defines MP3 encoding behaviour.
type Client interface {
	Encode(ctx context.Context, inputPath, outputPath string) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// CLI wraps the ffmpeg command-line encoder with a fixed libmp3lame codec.
type CLI struct {
	binary  string
	bitrate int
	quality int
}

// NewCLI constructs a CLI client for the given bitrate (kbit/s) and VBR
// quality setting.
func NewCLI(bitrate, quality int, opts ...Option) *CLI {
	cli := &CLI{binary: "ffmpeg", bitrate: bitrate, quality: quality}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Encode transcodes inputPath to MP3 at outputPath, overwriting any existing
// file. A non-zero exit reports ErrExternalTool; context expiry reports
// ErrTimeout.
func (c *CLI) Encode(ctx context.Context, inputPath, outputPath string) error {
	if inputPath == "" {
		return errors.New("input path required")
	}
	if outputPath == "" {
		return errors.New("output path required")
	}

	args := []string{
		"-i", inputPath,
		"-codec:a", "libmp3lame",
		"-b:a", strconv.Itoa(c.bitrate) + "k",
		"-q:a", strconv.Itoa(c.quality),
		"-y",
		outputPath,
	}

	var stderr bytes.Buffer
	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return services.Wrap(services.ErrTimeout, "encoder", "encode", c.binary+" timed out", ctx.Err())
		}
		detail := lastLine(stderr.Bytes())
		if detail != "" {
			err = fmt.Errorf("%w: %s", err, detail)
		}
		return services.Wrap(services.ErrExternalTool, "encoder", "encode", c.binary+" failed", err)
	}
	return nil
}

func lastLine(output []byte) string {
	trimmed := bytes.TrimSpace(output)
	if len(trimmed) == 0 {
		return ""
	}
	if idx := bytes.LastIndexByte(trimmed, '\n'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	return string(bytes.TrimSpace(trimmed))
}

var _ Client = (*CLI)(nil)
