package services

import (
	"context"
	"errors"
	"strings"

	"github.com/nmchugh17/evidence-timeline/internal/client/client"
	"github.com/nmchugh17/evidence-timeline/internal/client/models"
	"github.com/nmchugh17/evidence-timeline/internal/logging"
)

type TimelineService interface {
	// List returns the timelines visible to user in server order.
	List(ctx context.Context, user *models.User) ([]string, error)
	// Add creates a timeline. The caller refetches on success.
	Add(ctx context.Context, user *models.User, name string) error
}

type timelineService struct {
	client client.Client
	logger logging.Logger
}

func NewTimelineService(c client.Client, logger logging.Logger) TimelineService {
	return &timelineService{client: c, logger: logger}
}

func (s *timelineService) List(ctx context.Context, user *models.User) ([]string, error) {
	names, err := s.client.ListTimelines(ctx, user.Email)
	if err != nil {
		s.logger.Error(ctx, "fetch timelines", "email", user.Email, "error", err)
		return nil, userError("Error loading timelines. Please try again.", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (s *timelineService) Add(ctx context.Context, user *models.User, name string) error {
	if !user.IsAdmin() {
		return userError("You do not have permission to add timelines.", ErrPermission)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return userError("Timeline name cannot be empty.", ErrValidation)
	}

	resp, err := s.client.CreateTimeline(ctx, user.Email, name)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			if apiErr.ServerError != "" {
				return userError(apiErr.ServerError, err)
			}
			return userError("Error adding timeline.", err)
		}
		s.logger.Error(ctx, "add timeline", "timeline", name, "error", err)
		return userError("Failed to add timeline. Please try again.", err)
	}
	if resp.Message == "" {
		if resp.Error != "" {
			return userError(resp.Error, nil)
		}
		return userError("Error adding timeline.", nil)
	}
	s.logger.Info(ctx, "timeline added", "timeline", name)
	return nil
}
