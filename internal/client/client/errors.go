package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx answer from the timeline API.
type APIError struct {
	StatusCode int
	// ServerError and ServerMessage are the "error" and "message" fields of
	// the JSON body, when present.
	ServerError   string
	ServerMessage string
	Body          []byte
}

func (e *APIError) Error() string {
	switch {
	case e.ServerError != "":
		return e.ServerError
	case e.ServerMessage != "":
		return e.ServerMessage
	default:
		return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}
