package media

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/nmchugh17/evidence-timeline/internal/client/models"
	"github.com/nmchugh17/evidence-timeline/internal/netx"
)

type HTTPStore struct {
	baseURL string
	http    *http.Client
	now     func() time.Time
}

func NewHTTPStore(baseURL string, timeout time.Duration) *HTTPStore {
	return &HTTPStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

func objectURL(base, key string, kind Kind, now time.Time) string {
	u := base + "/" + strings.TrimLeft(key, "/")
	if kind == KindImage {
		u += "?t=" + strconv.FormatInt(now.UnixMilli(), 10)
	}
	return u
}

func (s *HTTPStore) URL(_ context.Context, key string, kind Kind) (string, error) {
	return objectURL(s.baseURL, key, kind, s.now()), nil
}

func (s *HTTPStore) Fetch(ctx context.Context, key string) (*models.File, error) {
	data, ct, err := netx.Download(ctx, s.http, objectURL(s.baseURL, key, KindFromKey(key), s.now()))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", key, err)
	}
	return fileFromObject(key, ct, data), nil
}
