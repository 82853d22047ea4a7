package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the timeline CLI.
type Config struct {
	APIEndpoint string

	// Media is read either over plain HTTP from MediaBaseURL or, when
	// MediaBucket is set, through the S3 API.
	MediaBaseURL   string
	MediaBucket    string
	MediaRegion    string
	MediaEndpoint  string
	MediaAccessKey string
	MediaSecretKey string

	SessionDBPath  string
	DownloadDir    string
	RequestTimeout time.Duration
	LogLevel       string
	VerifySession  bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIEndpoint = "http://127.0.0.1:8080"
	c.MediaBaseURL = "http://127.0.0.1:9000/evidence-timeline-media"
	c.MediaRegion = "eu-west-1"
	c.SessionDBPath = "timeline.db"
	c.DownloadDir = "download"
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
}

// UseS3 reports whether media should be fetched through the S3 API.
func (c *Config) UseS3() bool {
	return c.MediaBucket != ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
