package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/nmchugh17/evidence-timeline/internal/client/client"
	"github.com/nmchugh17/evidence-timeline/internal/client/models"
	"github.com/nmchugh17/evidence-timeline/internal/logging"
)

const (
	msgEventAdded   = "Event added"
	msgEventUpdated = "Event updated"
)

type EventService interface {
	List(ctx context.Context, user *models.User, timeline string) ([]models.Event, error)
	// Save creates the event when eventID is empty and updates it otherwise.
	Save(ctx context.Context, user *models.User, eventID string, p models.EventPayload) error
	Delete(ctx context.Context, user *models.User, eventID, timeline string) error
}

type eventService struct {
	client client.Client
	logger logging.Logger
}

func NewEventService(c client.Client, logger logging.Logger) EventService {
	return &eventService{client: c, logger: logger}
}

func (s *eventService) List(ctx context.Context, user *models.User, timeline string) ([]models.Event, error) {
	events, err := s.client.ListEvents(ctx, user.Email, timeline)
	if err != nil {
		s.logger.Error(ctx, "render timeline", "timeline", timeline, "error", err)
		return nil, userError(fmt.Sprintf("Error loading timeline: %s. Please try again.", describeLoadError(err)), err)
	}
	return events, nil
}

func describeLoadError(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		detail := apiErr.ServerError
		if detail == "" {
			detail = http.StatusText(apiErr.StatusCode)
		}
		return fmt.Sprintf("HTTP error! Status: %d %s", apiErr.StatusCode, detail)
	}
	return err.Error()
}

func (s *eventService) Save(ctx context.Context, user *models.User, eventID string, p models.EventPayload) error {
	if p.TimelineName == "" {
		return userError("Please select a timeline to add or update an event.", ErrValidation)
	}
	if p.Date == "" || strings.TrimSpace(p.Description) == "" {
		return userError("Please fill in all required fields", ErrValidation)
	}
	p.Description = strings.TrimSpace(p.Description)

	var (
		resp *client.MessageResponse
		err  error
	)
	if eventID == "" {
		resp, err = s.client.CreateEvent(ctx, user.Email, p)
	} else {
		resp, err = s.client.UpdateEvent(ctx, user.Email, eventID, p)
	}

	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			if apiErr.ServerError != "" {
				return userError(apiErr.ServerError, err)
			}
			return userError("Error saving event: "+compactBody(apiErr.Body), err)
		}
		s.logger.Error(ctx, "save event", "event_id", eventID, "error", err)
		return userError(fmt.Sprintf("Error saving event: %s. Please try again.", err), err)
	}

	if resp.Message != msgEventAdded && resp.Message != msgEventUpdated {
		if resp.Error != "" {
			return userError(resp.Error, nil)
		}
		return userError("Error saving event: "+string(resp.Raw), nil)
	}
	s.logger.Info(ctx, "event saved", "event_id", eventID, "timeline", p.TimelineName, "message", resp.Message)
	return nil
}

func compactBody(b []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return strings.TrimSpace(string(b))
	}
	return buf.String()
}

func (s *eventService) Delete(ctx context.Context, user *models.User, eventID, timeline string) error {
	if timeline == "" {
		return userError("Please select a timeline to delete events.", ErrValidation)
	}

	resp, err := s.client.DeleteEvent(ctx, user.Email, eventID, timeline)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			return userError("Error deleting event: "+apiErr.Error(), err)
		}
		s.logger.Error(ctx, "delete event", "event_id", eventID, "error", err)
		return userError(fmt.Sprintf("Error deleting event: %s. Please try again.", err), err)
	}
	if !resp.Success {
		detail := resp.Error
		if detail == "" {
			detail = resp.Message
		}
		return userError("Error deleting event: "+detail, nil)
	}
	s.logger.Info(ctx, "event deleted", "event_id", eventID, "timeline", timeline)
	return nil
}
