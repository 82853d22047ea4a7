package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nmchugh17/evidence-timeline/internal/client/models"
	"github.com/nmchugh17/evidence-timeline/internal/common"
	"github.com/nmchugh17/evidence-timeline/internal/logging"
)

const maxResponseBytes = 32 << 20

type HTTPClient struct {
	baseURL      string
	http         *http.Client
	logger       logging.Logger
	newRequestID func() string
}

// NewHTTPClient returns a client for the API rooted at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api endpoint %q: scheme must be http or https", baseURL)
	}
	return &HTTPClient{
		baseURL:      u.String(),
		http:         &http.Client{Timeout: timeout},
		logger:       logger,
		newRequestID: uuid.NewString,
	}, nil
}

// endpoint joins an already escaped path and an optional query onto the base URL.
func (c *HTTPClient) endpoint(path string, query url.Values) string {
	if len(query) == 0 {
		return c.baseURL + path
	}
	return c.baseURL + path + "?" + query.Encode()
}

// do sends one JSON request and decodes a 2xx body into out. It returns the
// raw body so callers can surface it verbatim.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, authEmail string, in, out any) ([]byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}

	reqID := c.newRequestID()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, reqID)
	if authEmail != "" {
		req.Header.Set(common.AuthEmailHeaderName, authEmail)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "api request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	c.logger.Debug(ctx, "api request", "method", method, "path", path, "status", resp.StatusCode,
		"request_id", reqID, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: raw}
		var m struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &m) == nil {
			apiErr.ServerError = m.Error
			apiErr.ServerMessage = m.Message
		}
		return raw, apiErr
	}

	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return raw, fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return raw, nil
}

func (c *HTTPClient) message(ctx context.Context, method, path string, query url.Values, authEmail string, in any) (*MessageResponse, error) {
	var out MessageResponse
	raw, err := c.do(ctx, method, path, query, authEmail, in, &out)
	if err != nil {
		return nil, err
	}
	var compact bytes.Buffer
	if json.Compact(&compact, raw) == nil {
		out.Raw = compact.Bytes()
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	if _, err := c.do(ctx, http.MethodPost, "/login", nil, "", loginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, r models.RegisterRequest) (*MessageResponse, error) {
	return c.message(ctx, http.MethodPost, "/register", nil, "", r)
}

func (c *HTTPClient) ListTimelines(ctx context.Context, authEmail string) ([]string, error) {
	var out timelinesResponse
	if _, err := c.do(ctx, http.MethodGet, "/timelines", nil, authEmail, nil, &out); err != nil {
		return nil, err
	}
	return out.Timelines, nil
}

func (c *HTTPClient) CreateTimeline(ctx context.Context, authEmail, name string) (*MessageResponse, error) {
	return c.message(ctx, http.MethodPost, "/timelines", nil, authEmail, createTimelineRequest{TimelineName: name})
}

func (c *HTTPClient) ListEvents(ctx context.Context, authEmail, timeline string) ([]models.Event, error) {
	var out eventsResponse
	q := url.Values{"timelineName": {timeline}}
	if _, err := c.do(ctx, http.MethodGet, "/events", q, authEmail, nil, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

func (c *HTTPClient) CreateEvent(ctx context.Context, authEmail string, p models.EventPayload) (*MessageResponse, error) {
	return c.message(ctx, http.MethodPost, "/events", nil, authEmail, p)
}

func (c *HTTPClient) UpdateEvent(ctx context.Context, authEmail, eventID string, p models.EventPayload) (*MessageResponse, error) {
	return c.message(ctx, http.MethodPut, "/events/"+url.PathEscape(eventID), nil, authEmail, p)
}

func (c *HTTPClient) DeleteEvent(ctx context.Context, authEmail, eventID, timeline string) (*DeleteResponse, error) {
	var out DeleteResponse
	q := url.Values{"timelineName": {timeline}}
	if _, err := c.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(eventID), q, authEmail, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, authEmail string, r models.UserRequest) (*MessageResponse, error) {
	return c.message(ctx, http.MethodPost, "/users", nil, authEmail, r)
}

func (c *HTTPClient) UpdateUser(ctx context.Context, authEmail, email string, r models.UserRequest) (*MessageResponse, error) {
	r.Email = ""
	return c.message(ctx, http.MethodPut, "/users/"+url.PathEscape(email), nil, authEmail, r)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, authEmail, email string) (*MessageResponse, error) {
	return c.message(ctx, http.MethodDelete, "/users/"+url.PathEscape(email), nil, authEmail, nil)
}
