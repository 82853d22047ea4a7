package config

import (
	"encoding/json"
	"os"

	"github.com/nmchugh17/evidence-timeline/internal/flagx"
	"github.com/nmchugh17/evidence-timeline/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	APIEndpoint    string         `json:"api_endpoint"`
	MediaBaseURL   string         `json:"media_base_url"`
	MediaBucket    string         `json:"media_bucket"`
	MediaRegion    string         `json:"media_region"`
	MediaEndpoint  string         `json:"media_endpoint"`
	MediaAccessKey string         `json:"media_access_key"`
	MediaSecretKey string         `json:"media_secret_key"`
	SessionDBPath  string         `json:"session_db"`
	DownloadDir    string         `json:"download_dir"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LogLevel       string         `json:"log_level"`
	VerifySession  *bool          `json:"verify_session"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c/-config or TIMELINE_CONFIG. Panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.APIEndpoint, jc.APIEndpoint)
	overlay(&cfg.MediaBaseURL, jc.MediaBaseURL)
	overlay(&cfg.MediaBucket, jc.MediaBucket)
	overlay(&cfg.MediaRegion, jc.MediaRegion)
	overlay(&cfg.MediaEndpoint, jc.MediaEndpoint)
	overlay(&cfg.MediaAccessKey, jc.MediaAccessKey)
	overlay(&cfg.MediaSecretKey, jc.MediaSecretKey)
	overlay(&cfg.SessionDBPath, jc.SessionDBPath)
	overlay(&cfg.DownloadDir, jc.DownloadDir)
	overlay(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.VerifySession != nil {
		cfg.VerifySession = *jc.VerifySession
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
