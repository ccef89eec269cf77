package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeSite()
	c.normalizeStorage()
	if err := c.normalizeEncoder(); err != nil {
		return err
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeSite() {
	overrideString(&c.Site.Title, "SITE_TITLE")
	overrideString(&c.Site.Description, "SITE_DESCRIPTION")
	overrideString(&c.Site.Author, "SITE_AUTHOR")
	overrideString(&c.Site.GitHubUser, "GITHUB_USERNAME")
}

func (c *Config) normalizeStorage() {
	overrideString(&c.Storage.AccessKeyID, "AWS_ACCESS_KEY_ID")
	overrideString(&c.Storage.SecretAccessKey, "AWS_SECRET_ACCESS_KEY")
	overrideString(&c.Storage.Region, "AWS_REGION")
	overrideString(&c.Storage.Bucket, "S3_BUCKET_NAME")
	overrideString(&c.Storage.BaseURL, "S3_BASE_URL")
	c.Storage.BaseURL = strings.TrimRight(strings.TrimSpace(c.Storage.BaseURL), "/")
	if strings.TrimSpace(c.Storage.Region) == "" {
		c.Storage.Region = defaultRegion
	}
}

func (c *Config) normalizeEncoder() error {
	if err := overrideInt(&c.Encoder.Bitrate, "MP3_BITRATE"); err != nil {
		return err
	}
	if err := overrideInt(&c.Encoder.Quality, "MP3_QUALITY"); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.TracksDir, err = expandPath(c.Paths.TracksDir); err != nil {
		return fmt.Errorf("paths.tracks_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.TemplatesDir, err = expandPath(c.Paths.TemplatesDir); err != nil {
		return fmt.Errorf("paths.templates_dir: %w", err)
	}
	if c.Paths.AssetsDir, err = expandPath(c.Paths.AssetsDir); err != nil {
		return fmt.Errorf("paths.assets_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func overrideString(target *string, key string) {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		*target = strings.TrimSpace(value)
	}
}

func overrideInt(target *int, key string) error {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%s: expected integer, got %q", key, value)
	}
	*target = parsed
	return nil
}
