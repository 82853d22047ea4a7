package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nmchugh17/evidence-timeline/internal/client/client"
	"github.com/nmchugh17/evidence-timeline/internal/client/models"
	"github.com/nmchugh17/evidence-timeline/internal/logging"
)

// UserService is the super-admin account management API.
type UserService interface {
	Create(ctx context.Context, actor *models.User, req models.UserRequest) (string, error)
	Update(ctx context.Context, actor *models.User, email string, req models.UserRequest) (string, error)
	Delete(ctx context.Context, actor *models.User, email string) (string, error)
}

type userService struct {
	client client.Client
	logger logging.Logger
}

func NewUserService(c client.Client, logger logging.Logger) UserService {
	return &userService{client: c, logger: logger}
}

func requireSuperAdmin(actor *models.User) error {
	if !actor.IsSuperAdmin() {
		return userError("Super admin access required.", ErrPermission)
	}
	return nil
}

func validateRole(r models.Role) error {
	if r != "" && !r.Valid() {
		return userError(fmt.Sprintf("Invalid role %q.", r), ErrValidation)
	}
	return nil
}

func (s *userService) Create(ctx context.Context, actor *models.User, req models.UserRequest) (string, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return "", err
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return "", userError("Email, password and role are required.", ErrValidation)
	}
	if err := validateRole(req.Role); err != nil {
		return "", err
	}
	return s.finish(ctx, "create user", req.Email)(s.client.CreateUser(ctx, actor.Email, req))
}

func (s *userService) Update(ctx context.Context, actor *models.User, email string, req models.UserRequest) (string, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return "", err
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return "", userError("Email is required.", ErrValidation)
	}
	if err := validateRole(req.Role); err != nil {
		return "", err
	}
	if req.Password == "" && req.Role == "" && req.Timelines == nil {
		return "", userError("Nothing to update.", ErrValidation)
	}
	return s.finish(ctx, "update user", email)(s.client.UpdateUser(ctx, actor.Email, email, req))
}

func (s *userService) Delete(ctx context.Context, actor *models.User, email string) (string, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return "", err
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return "", userError("Email is required.", ErrValidation)
	}
	return s.finish(ctx, "delete user", email)(s.client.DeleteUser(ctx, actor.Email, email))
}

// finish maps a user-management reply to the printed message.
func (s *userService) finish(ctx context.Context, op, email string) func(*client.MessageResponse, error) (string, error) {
	return func(resp *client.MessageResponse, err error) (string, error) {
		if err != nil {
			var apiErr *client.APIError
			if errors.As(err, &apiErr) {
				return "", userError(apiErr.Error(), err)
			}
			s.logger.Error(ctx, op, "email", email, "error", err)
			return "", userError("Failed to connect to server. Please try again later.", err)
		}
		if resp.Message == "" {
			if resp.Error != "" {
				return "", userError(resp.Error, nil)
			}
			return "", userError("Unexpected response from server.", nil)
		}
		s.logger.Info(ctx, op, "email", email)
		return resp.Message, nil
	}
}
