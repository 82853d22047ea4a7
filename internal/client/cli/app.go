package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/nmchugh17/evidence-timeline/internal/client/client"
	"github.com/nmchugh17/evidence-timeline/internal/client/config"
	"github.com/nmchugh17/evidence-timeline/internal/client/cropper"
	"github.com/nmchugh17/evidence-timeline/internal/client/media"
	"github.com/nmchugh17/evidence-timeline/internal/client/render"
	"github.com/nmchugh17/evidence-timeline/internal/client/services"
	"github.com/nmchugh17/evidence-timeline/internal/client/state"
	"github.com/nmchugh17/evidence-timeline/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the root controller. It owns the single State object and is only
// driven from the REPL goroutine.
type App struct {
	config *config.Config
	logger logging.Logger

	authService     services.AuthService
	timelineService services.TimelineService
	eventService    services.EventService
	userService     services.UserService
	media           media.Store
	editor          *cropper.Editor

	state    *state.State
	renderer *render.Renderer
	reader   *bufio.Reader
	out      io.Writer
	db       *sql.DB
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.SessionDBPath, "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIEndpoint, c.RequestTimeout, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	store, err := media.NewStore(ctx, media.Config{
		BaseURL:   c.MediaBaseURL,
		Bucket:    c.MediaBucket,
		Region:    c.MediaRegion,
		Endpoint:  c.MediaEndpoint,
		AccessKey: c.MediaAccessKey,
		SecretKey: c.MediaSecretKey,
		Timeout:   c.RequestTimeout,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("media store: %w", err)
	}

	a := &App{
		config:          c,
		logger:          logger,
		authService:     services.NewAuthService(apiClient, services.NewSessionStore(db), c.VerifySession, logger),
		timelineService: services.NewTimelineService(apiClient, logger),
		eventService:    services.NewEventService(apiClient, logger),
		userService:     services.NewUserService(apiClient, logger),
		media:           store,
		editor:          cropper.NewEditor(cropper.NewImagingWidget()),
		state:           &state.State{},
		reader:          bufio.NewReader(os.Stdin),
		db:              db,
	}
	a.setOutput(os.Stdout)
	return a, nil
}

func (a *App) setOutput(w io.Writer) {
	a.out = w
	a.renderer = render.NewRenderer(w)
}

// Run restores a persisted session, then serves the REPL until the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	if a.db != nil {
		defer a.db.Close()
	}

	fmt.Fprintln(a.out, "Welcome to the evidence timeline CLI (type 'help' for commands)")
	a.restore(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) getStatus() string {
	if !a.state.LoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s %s) [%s]", a.state.User.Email, a.state.User.Role, a.state.CurrentLabel())
}

// withSpinner marks the app busy for the duration of fn. Controls are
// derived from State, so everything is disabled while fn runs.
func (a *App) withSpinner(ctx context.Context, fn func(ctx context.Context) error) error {
	a.state.Busy = true
	defer func() { a.state.Busy = false }()
	return fn(ctx)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// setAuthError and setTimelineError fill an inline error slot and show it.
func (a *App) setAuthError(msg string) {
	a.state.AuthError = msg
	a.renderer.Error(msg)
}

func (a *App) setTimelineError(msg string) {
	a.state.TimelineError = msg
	a.renderer.Error(msg)
}

// resetForm clears the event form, edit mode and the attachment editor.
func (a *App) resetForm() {
	a.state.Form = state.Form{}
	a.editor.Reset()
}
