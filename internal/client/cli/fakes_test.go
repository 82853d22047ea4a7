package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/nmchugh17/evidence-timeline/internal/client/config"
	"github.com/nmchugh17/evidence-timeline/internal/client/cropper"
	"github.com/nmchugh17/evidence-timeline/internal/client/media"
	"github.com/nmchugh17/evidence-timeline/internal/client/models"
	"github.com/nmchugh17/evidence-timeline/internal/client/services"
	"github.com/nmchugh17/evidence-timeline/internal/client/state"
	"github.com/nmchugh17/evidence-timeline/internal/common"
	"github.com/nmchugh17/evidence-timeline/internal/logging"
	"github.com/stretchr/testify/require"
)

// ---- fake services ----

type fakeAuth struct {
	user        *models.User
	loginErr    error
	restoreUser *models.User
	registerMsg string
	registerErr error
	logoutErr   error

	email, password string
	registered      *models.RegisterRequest
	logouts         int
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*models.User, error) {
	f.email, f.password = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.user, nil
}

func (f *fakeAuth) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	f.registered = &req
	return f.registerMsg, f.registerErr
}

func (f *fakeAuth) Restore(ctx context.Context) (*models.User, error) {
	return f.restoreUser, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.logouts++
	return f.logoutErr
}

type fakeTimelines struct {
	names   []string
	listErr error
	addErr  error

	lists int
	added []string
}

func (f *fakeTimelines) List(ctx context.Context, user *models.User) ([]string, error) {
	f.lists++
	return f.names, f.listErr
}

func (f *fakeTimelines) Add(ctx context.Context, user *models.User, name string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, name)
	f.names = append(f.names, name)
	return nil
}

type savedEvent struct {
	eventID string
	payload models.EventPayload
}

type fakeEvents struct {
	byTimeline map[string][]models.Event
	listErr    error
	saveErr    error
	deleteErr  error

	listed  []string
	saved   []savedEvent
	deleted []string
}

func (f *fakeEvents) List(ctx context.Context, user *models.User, timeline string) ([]models.Event, error) {
	f.listed = append(f.listed, timeline)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byTimeline[timeline], nil
}

func (f *fakeEvents) Save(ctx context.Context, user *models.User, eventID string, p models.EventPayload) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, savedEvent{eventID: eventID, payload: p})
	return nil
}

func (f *fakeEvents) Delete(ctx context.Context, user *models.User, eventID, timeline string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, eventID+"@"+timeline)
	return nil
}

type fakeUsers struct {
	err   error
	calls []string
	last  models.UserRequest
}

func (f *fakeUsers) Create(ctx context.Context, actor *models.User, req models.UserRequest) (string, error) {
	f.calls = append(f.calls, "create")
	f.last = req
	return "User created", f.err
}

func (f *fakeUsers) Update(ctx context.Context, actor *models.User, email string, req models.UserRequest) (string, error) {
	f.calls = append(f.calls, "update "+email)
	f.last = req
	return "User updated", f.err
}

func (f *fakeUsers) Delete(ctx context.Context, actor *models.User, email string) (string, error) {
	f.calls = append(f.calls, "delete "+email)
	return "User deleted", f.err
}

type fakeMedia struct {
	files map[string]*models.File
}

func (f *fakeMedia) URL(ctx context.Context, key string, kind media.Kind) (string, error) {
	return "https://media.test/" + key, nil
}

func (f *fakeMedia) Fetch(ctx context.Context, key string) (*models.File, error) {
	if file, ok := f.files[key]; ok {
		return file, nil
	}
	if key == "broken" {
		return nil, errors.New("connection reset")
	}
	return nil, fmt.Errorf("fetch %s: %w", key, common.ErrorNotFound)
}

// ---- helpers ----

type testEnv struct {
	app       *App
	out       *bytes.Buffer
	auth      *fakeAuth
	timelines *fakeTimelines
	events    *fakeEvents
	users     *fakeUsers
	media     *fakeMedia
}

var (
	superAdmin = &models.User{Email: "root@x", Username: "root", Role: models.RoleSuperAdmin}
	tlAdmin    = &models.User{Email: "alice@x", Username: "alice", Role: models.RoleTimelineAdmin, Timelines: []string{"alice"}}
	viewer     = &models.User{Email: "bob@x", Username: "bob", Role: models.RoleViewer, Timelines: []string{"t1"}}
)

// newTestEnv builds an App around fakes. input feeds the interactive
// prompts; passwords come from the getPassword stub.
func newTestEnv(t *testing.T, input string) *testEnv {
	t.Helper()

	origPassword := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte("secret"), nil }
	t.Cleanup(func() { getPassword = origPassword })

	env := &testEnv{
		out:       &bytes.Buffer{},
		auth:      &fakeAuth{},
		timelines: &fakeTimelines{},
		events:    &fakeEvents{byTimeline: map[string][]models.Event{}},
		users:     &fakeUsers{},
		media:     &fakeMedia{files: map[string]*models.File{}},
	}
	env.app = &App{
		config:          &config.Config{DownloadDir: t.TempDir()},
		logger:          logging.Discard(),
		authService:     env.auth,
		timelineService: env.timelines,
		eventService:    env.events,
		userService:     env.users,
		media:           env.media,
		editor:          cropper.NewEditor(cropper.NewImagingWidget()),
		state:           &state.State{},
		reader:          bufio.NewReader(strings.NewReader(input)),
	}
	env.app.setOutput(env.out)
	return env
}

// signIn puts u in the state with the given timelines, the first selected.
func (e *testEnv) signIn(u *models.User, timelines ...string) {
	e.app.state.User = u
	e.timelines.names = timelines
	e.app.state.SetTimelines(timelines)
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := imaging.New(w, h, color.NRGBA{B: 255, A: 255})
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func userErr(msg string) error {
	return &services.Error{Message: msg}
}
