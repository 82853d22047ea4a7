package cli

import (
	"context"

	"github.com/nmchugh17/evidence-timeline/internal/client/models"
	"github.com/nmchugh17/evidence-timeline/internal/client/services"
	"github.com/nmchugh17/evidence-timeline/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getMultiline    = GetMultiline
	getConfirmation = GetConfirmation
)

// restore signs the persisted user back in without asking for credentials.
func (a *App) restore(ctx context.Context) {
	u, err := a.authService.Restore(ctx)
	if err != nil {
		a.logger.Warn(ctx, "restore session", "error", err)
		return
	}
	if u == nil {
		return
	}
	a.signedIn(ctx, u)
}

func (a *App) signedIn(ctx context.Context, u *models.User) {
	a.state.User = u
	a.state.ClearErrors()
	a.println("Signed in as " + u.Email + " (" + string(u.Role) + ")")
	a.refreshTimelines(ctx)
}

// Login prompts for credentials and signs in. On failure the auth error
// slot is set and the session is left untouched.
func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	var u *models.User
	err = a.withSpinner(ctx, func(ctx context.Context) error {
		u, err = a.authService.Login(ctx, email, string(password))
		return err
	})
	if err != nil {
		a.logger.Warn(ctx, "login unsuccessful", "email", email, "error", err)
		a.setAuthError(services.Message(err))
		return err
	}

	a.signedIn(ctx, u)
	return nil
}

// Register collects the registration form. Success leaves the user logged
// out with a prompt to sign in.
func (a *App) Register(ctx context.Context, _ []string) error {
	var req models.RegisterRequest
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Enter email", &req.Email},
		{"Enter username", &req.Username},
		{"Enter first name", &req.FirstName},
		{"Enter surname", &req.Surname},
	} {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	req.RequestTimeline, err = getConfirmation(a.reader, "Request your own timeline?", a.out)
	if err != nil {
		return err
	}

	var msg string
	err = a.withSpinner(ctx, func(ctx context.Context) error {
		msg, err = a.authService.Register(ctx, req)
		return err
	})
	if err != nil {
		a.setAuthError(services.Message(err))
		return err
	}

	a.state.AuthError = ""
	a.println(msg)
	return nil
}

// Logout clears the persisted session and every piece of UI state. The
// in-memory state is dropped even if the session store fails.
func (a *App) Logout(ctx context.Context, _ []string) error {
	err := a.authService.Logout(ctx)
	if err != nil {
		a.logger.Error(ctx, "clear session", "error", err)
	}
	a.resetForm()
	a.state.Reset()
	a.println("Logged out.")
	return err
}
