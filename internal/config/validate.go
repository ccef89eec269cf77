package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable. Hard failures only; settings
// that merely disable features are reported by Warnings.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateEncoder(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.TracksDir) == "" {
		return errors.New("paths.tracks_dir must be set")
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return errors.New("paths.output_dir must be set")
	}
	return nil
}

func (c *Config) validateEncoder() error {
	if c.Encoder.Bitrate <= 0 {
		return errors.New("encoder.bitrate must be positive (kbit/s)")
	}
	if c.Encoder.Quality < 0 || c.Encoder.Quality > 9 {
		return errors.New("encoder.quality must be between 0 and 9")
	}
	if c.Encoder.TimeoutSeconds <= 0 {
		return errors.New("encoder.timeout_seconds must be positive")
	}
	return nil
}

// Warnings reports configuration gaps that degrade the build without
// stopping it. Collected once at startup so components never print their
// own configuration complaints mid-run.
func (c *Config) Warnings() []string {
	var warnings []string
	if !c.PublishEnabled() {
		warnings = append(warnings,
			"storage not fully configured: set storage.bucket and storage.base_url (or S3_BUCKET_NAME and S3_BASE_URL); audio files will not be uploaded")
	} else if strings.TrimSpace(c.Storage.AccessKeyID) == "" || strings.TrimSpace(c.Storage.SecretAccessKey) == "" {
		warnings = append(warnings,
			fmt.Sprintf("no explicit credentials for bucket %q; falling back to the default provider chain", c.Storage.Bucket))
	}
	return warnings
}
