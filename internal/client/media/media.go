// Package media resolves event attachment keys to downloadable objects.
//
// Objects live in a bucket under keys such as events/cropped/<id>.png. They
// are read either over plain HTTP from a public base URL (HTTPStore) or
// through the S3 API (S3Store).
package media

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/nmchugh17/evidence-timeline/internal/client/models"
)

// Kind is the presentation class of an attachment.
type Kind string

const (
	KindImage       Kind = "image"
	KindAudio       Kind = "audio"
	KindUnsupported Kind = "unsupported"
)

// KindFromKey infers the attachment kind from the key's extension,
// ignoring case.
func KindFromKey(key string) Kind {
	switch strings.ToLower(path.Ext(key)) {
	case ".jpg", ".jpeg", ".png":
		return KindImage
	case ".ogg", ".mp3":
		return KindAudio
	default:
		return KindUnsupported
	}
}

type Store interface {
	// URL returns where the object can be displayed from. Image URLs carry a
	// cache-busting parameter.
	URL(ctx context.Context, key string, kind Kind) (string, error)
	// Fetch downloads the object into memory.
	Fetch(ctx context.Context, key string) (*models.File, error)
}

type Config struct {
	BaseURL   string
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Timeout   time.Duration
}

// NewStore picks the S3 store when a bucket is configured and the plain
// HTTP store otherwise.
func NewStore(ctx context.Context, cfg Config) (Store, error) {
	if cfg.Bucket != "" {
		return NewS3Store(ctx, cfg)
	}
	return NewHTTPStore(cfg.BaseURL, cfg.Timeout), nil
}

func fileFromObject(key, contentType string, data []byte) *models.File {
	name := path.Base(key)
	mt, _, _ := strings.Cut(contentType, ";")
	mt = strings.TrimSpace(mt)
	if mt == "" || mt == "application/octet-stream" || mt == "binary/octet-stream" {
		mt = models.DetectMIMEType(name, data)
	}
	return &models.File{Name: name, MIMEType: mt, Data: data}
}
