package client

import (
	"context"
	"encoding/json"

	"github.com/nmchugh17/evidence-timeline/internal/client/models"
)

// Client is the timeline API as seen by the services layer. authEmail is
// the signed-in user's email; it is sent as X-Auth-Email.
type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*MessageResponse, error)

	ListTimelines(ctx context.Context, authEmail string) ([]string, error)
	CreateTimeline(ctx context.Context, authEmail, name string) (*MessageResponse, error)

	ListEvents(ctx context.Context, authEmail, timeline string) ([]models.Event, error)
	CreateEvent(ctx context.Context, authEmail string, p models.EventPayload) (*MessageResponse, error)
	UpdateEvent(ctx context.Context, authEmail, eventID string, p models.EventPayload) (*MessageResponse, error)
	DeleteEvent(ctx context.Context, authEmail, eventID, timeline string) (*DeleteResponse, error)

	CreateUser(ctx context.Context, authEmail string, req models.UserRequest) (*MessageResponse, error)
	UpdateUser(ctx context.Context, authEmail, email string, req models.UserRequest) (*MessageResponse, error)
	DeleteUser(ctx context.Context, authEmail, email string) (*MessageResponse, error)
}

type LoginResponse struct {
	Authenticated bool        `json:"authenticated"`
	IsAdmin       bool        `json:"isAdmin"`
	Email         string      `json:"email"`
	Username      string      `json:"username"`
	Role          models.Role `json:"role"`
	Timelines     []string    `json:"timelines"`
	Error         string      `json:"error"`
}

// MessageResponse is the common {message, error} reply. Raw keeps the
// compacted body for diagnostics.
type MessageResponse struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Raw     json.RawMessage `json:"-"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

type timelinesResponse struct {
	Timelines []string `json:"timelines"`
}

type eventsResponse struct {
	Events []models.Event `json:"events"`
}

type createTimelineRequest struct {
	TimelineName string `json:"timelineName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
