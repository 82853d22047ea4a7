package config

import (
	"flag"
	"time"

	"github.com/nmchugh17/evidence-timeline/internal/flagx"
)

var knownFlags = []string{"-a", "-m", "-b", "-r", "-e", "-d", "-o", "-t", "-l", "-s"}

// parseFlags populates Config fields from command-line flags. args is
// usually os.Args[1:]; anything not in knownFlags is ignored so -c/-config
// can share the command line. Panics on malformed values.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIEndpoint, "a", cfg.APIEndpoint, "base URL of the timeline API")
	fs.StringVar(&cfg.MediaBaseURL, "m", cfg.MediaBaseURL, "public base URL of the media bucket")
	fs.StringVar(&cfg.MediaBucket, "b", cfg.MediaBucket, "S3 bucket holding event media")
	fs.StringVar(&cfg.MediaRegion, "r", cfg.MediaRegion, "S3 region")
	fs.StringVar(&cfg.MediaEndpoint, "e", cfg.MediaEndpoint, "S3 endpoint override")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "session database path")
	fs.StringVar(&cfg.DownloadDir, "o", cfg.DownloadDir, "directory for viewed attachments")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.VerifySession, "s", cfg.VerifySession, "revalidate restored session")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
