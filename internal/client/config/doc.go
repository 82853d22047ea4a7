// Package config loads runtime configuration for the timeline CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c/-config, or the
//     TIMELINE_CONFIG environment variable when no flag is given.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the timeline API
//	-m string   public base URL of the media bucket
//	-b string   S3 bucket name; switches media fetches to the S3 API
//	-r string   S3 region
//	-e string   S3 endpoint override (MinIO, LocalStack)
//	-d string   path of the SQLite session database
//	-o string   directory where viewed attachments are saved
//	-t int      request timeout (seconds)
//	-l string   log level (debug, info, warn, error)
//	-s          revalidate a restored session against the API
//
// # JSON schema
//
//	{
//	  "api_endpoint": "https://timeline.example.org",
//	  "media_base_url": "https://bucket.s3.eu-west-1.amazonaws.com",
//	  "media_bucket": "",
//	  "media_region": "eu-west-1",
//	  "media_endpoint": "",
//	  "media_access_key": "",
//	  "media_secret_key": "",
//	  "session_db": "timeline.db",
//	  "download_dir": "download",
//	  "request_timeout": "30s",
//	  "log_level": "info",
//	  "verify_session": false
//	}
//
// Empty JSON values leave the previous value untouched. S3 credentials are
// accepted from JSON only so they never appear in a process listing.
package config
