package services

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/nmchugh17/evidence-timeline/internal/client/client"
	"github.com/nmchugh17/evidence-timeline/internal/client/models"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	require.NoError(t, err)
	return db
}

func getMeta(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return nil
	}
	require.NoError(t, err)
	return v
}

// ---- fake client ----

type fakeClient struct {
	LoginResp *client.LoginResponse
	LoginErr  error

	RegisterResp *client.MessageResponse
	RegisterErr  error

	Timelines    []string
	TimelinesErr error

	CreateTimelineResp *client.MessageResponse
	CreateTimelineErr  error

	Events    []models.Event
	EventsErr error

	SaveResp *client.MessageResponse
	SaveErr  error

	DeleteResp *client.DeleteResponse
	DeleteErr  error

	UserResp *client.MessageResponse
	UserErr  error

	// captured inputs
	Calls            []string
	LastAuthEmail    string
	LastLoginEmail   string
	LastLoginPass    string
	LastRegister     models.RegisterRequest
	LastTimelineName string
	LastEventID      string
	LastPayload      models.EventPayload
	LastUserReq      models.UserRequest
	LastUserEmail    string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(ctx context.Context, email, password string) (*client.LoginResponse, error) {
	f.Calls = append(f.Calls, "Login")
	f.LastLoginEmail, f.LastLoginPass = email, password
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) (*client.MessageResponse, error) {
	f.Calls = append(f.Calls, "Register")
	f.LastRegister = req
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeClient) ListTimelines(ctx context.Context, authEmail string) ([]string, error) {
	f.Calls = append(f.Calls, "ListTimelines")
	f.LastAuthEmail = authEmail
	return f.Timelines, f.TimelinesErr
}

func (f *fakeClient) CreateTimeline(ctx context.Context, authEmail, name string) (*client.MessageResponse, error) {
	f.Calls = append(f.Calls, "CreateTimeline")
	f.LastAuthEmail, f.LastTimelineName = authEmail, name
	return f.CreateTimelineResp, f.CreateTimelineErr
}

func (f *fakeClient) ListEvents(ctx context.Context, authEmail, timeline string) ([]models.Event, error) {
	f.Calls = append(f.Calls, "ListEvents")
	f.LastAuthEmail, f.LastTimelineName = authEmail, timeline
	return f.Events, f.EventsErr
}

func (f *fakeClient) CreateEvent(ctx context.Context, authEmail string, p models.EventPayload) (*client.MessageResponse, error) {
	f.Calls = append(f.Calls, "CreateEvent")
	f.LastAuthEmail, f.LastPayload = authEmail, p
	return f.SaveResp, f.SaveErr
}

func (f *fakeClient) UpdateEvent(ctx context.Context, authEmail, eventID string, p models.EventPayload) (*client.MessageResponse, error) {
	f.Calls = append(f.Calls, "UpdateEvent")
	f.LastAuthEmail, f.LastEventID, f.LastPayload = authEmail, eventID, p
	return f.SaveResp, f.SaveErr
}

func (f *fakeClient) DeleteEvent(ctx context.Context, authEmail, eventID, timeline string) (*client.DeleteResponse, error) {
	f.Calls = append(f.Calls, "DeleteEvent")
	f.LastAuthEmail, f.LastEventID, f.LastTimelineName = authEmail, eventID, timeline
	return f.DeleteResp, f.DeleteErr
}

func (f *fakeClient) CreateUser(ctx context.Context, authEmail string, req models.UserRequest) (*client.MessageResponse, error) {
	f.Calls = append(f.Calls, "CreateUser")
	f.LastAuthEmail, f.LastUserReq = authEmail, req
	return f.UserResp, f.UserErr
}

func (f *fakeClient) UpdateUser(ctx context.Context, authEmail, email string, req models.UserRequest) (*client.MessageResponse, error) {
	f.Calls = append(f.Calls, "UpdateUser")
	f.LastAuthEmail, f.LastUserEmail, f.LastUserReq = authEmail, email, req
	return f.UserResp, f.UserErr
}

func (f *fakeClient) DeleteUser(ctx context.Context, authEmail, email string) (*client.MessageResponse, error) {
	f.Calls = append(f.Calls, "DeleteUser")
	f.LastAuthEmail, f.LastUserEmail = authEmail, email
	return f.UserResp, f.UserErr
}
