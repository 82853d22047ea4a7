// Package services contains application services for the timeline client.
// Each service talks to the API through client.Client and reports failures
// as *Error values carrying the exact text to show the user.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/nmchugh17/evidence-timeline/internal/client/client"
	"github.com/nmchugh17/evidence-timeline/internal/client/models"
	"github.com/nmchugh17/evidence-timeline/internal/logging"
)

// AuthService owns the session: who is signed in and whether that survives
// a restart.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (string, error)
	// Restore returns the persisted user, or nil when nobody is signed in.
	Restore(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client   client.Client
	sessions *SessionStore
	verify   bool
	logger   logging.Logger
}

// NewAuthService constructs an AuthService. With verify set, Restore asks
// the API whether the stored identity is still accepted.
func NewAuthService(c client.Client, sessions *SessionStore, verify bool, logger logging.Logger) AuthService {
	return &authService{client: c, sessions: sessions, verify: verify, logger: logger}
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, userError("Please enter email and password", ErrValidation)
	}

	resp, err := a.client.Login(ctx, email, password)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			if apiErr.ServerError != "" {
				return nil, userError(apiErr.ServerError, err)
			}
			return nil, userError("Incorrect email or password", err)
		}
		a.logger.Error(ctx, "login failed", "email", email, "error", err)
		return nil, userError("Error during login. Please try again.", err)
	}
	if !resp.Authenticated {
		if resp.Error != "" {
			return nil, userError(resp.Error, client.ErrUnauthorized)
		}
		return nil, userError("Incorrect email or password", client.ErrUnauthorized)
	}

	u := &models.User{
		Email:     resp.Email,
		Username:  resp.Username,
		Role:      resp.Role,
		Timelines: resp.Timelines,
	}
	if u.Email == "" {
		u.Email = email
	}
	if resp.IsAdmin != u.IsAdmin() {
		a.logger.Warn(ctx, "server isAdmin flag disagrees with role", "role", u.Role, "isAdmin", resp.IsAdmin)
	}

	if err := a.sessions.Save(ctx, u); err != nil {
		a.logger.Error(ctx, "persist session", "error", err)
		return nil, userError("Error during login. Please try again.", err)
	}
	a.logger.Info(ctx, "signed in", "email", u.Email, "role", u.Role)
	return u, nil
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.Surname = strings.TrimSpace(req.Surname)
	if req.Email == "" || req.Username == "" || req.Password == "" || req.FirstName == "" || req.Surname == "" {
		return "", userError("Please fill in all required fields", ErrValidation)
	}

	resp, err := a.client.Register(ctx, req)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			if apiErr.ServerError != "" {
				return "", userError(apiErr.ServerError, err)
			}
			return "", userError("Error during registration", err)
		}
		a.logger.Error(ctx, "registration failed", "email", req.Email, "error", err)
		return "", userError("Failed to connect to server. Please try again later.", err)
	}
	if resp.Message == "" {
		if resp.Error != "" {
			return "", userError(resp.Error, nil)
		}
		return "", userError("Error during registration", nil)
	}
	return "Registration successful! Please log in.", nil
}

func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	u, err := a.sessions.Load(ctx)
	if err != nil || u == nil {
		return nil, err
	}
	if !a.verify {
		return u, nil
	}

	if _, err := a.client.ListTimelines(ctx, u.Email); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.logger.Warn(ctx, "stored session rejected by server", "email", u.Email)
			return nil, a.sessions.Clear(ctx)
		}
		a.logger.Warn(ctx, "could not verify stored session", "email", u.Email, "error", err)
	}
	return u, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}
