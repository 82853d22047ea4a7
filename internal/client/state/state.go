// Package state holds the client's single application-state object and the
// pure derivation of which controls are enabled.
package state

import (
	"errors"
	"slices"

	"github.com/nmchugh17/evidence-timeline/internal/client/models"
)

const noTimelineLabel = "No Timeline Selected"

var ErrUnknownTimeline = errors.New("unknown timeline")

// Form is the event form. A non-empty EventID means edit mode.
type Form struct {
	Date        string
	Description string
	EventID     string
}

func (f Form) Editing() bool { return f.EventID != "" }

func (f Form) SubmitLabel() string {
	if f.Editing() {
		return "Update Event"
	}
	return "Add Event"
}

// State is mutated only by the controller goroutine.
type State struct {
	User            *models.User
	Timelines       []string
	CurrentTimeline string
	Busy            bool
	Form            Form

	// AuthError and TimelineError are the two inline message slots.
	AuthError     string
	TimelineError string

	// Events is the last successfully rendered list.
	Events []models.Event
}

func (s *State) LoggedIn() bool { return s.User != nil }

func (s *State) IsAdmin() bool { return s.User.IsAdmin() }

// Label is how a timeline name is listed to the current user.
func (s *State) Label(name string) string {
	if name == "" {
		return noTimelineLabel
	}
	if s.User.OwnsTimeline(name) {
		return name + " (My Timeline)"
	}
	return name
}

// CurrentLabel labels the selected timeline.
func (s *State) CurrentLabel() string {
	return s.Label(s.CurrentTimeline)
}

// SetTimelines replaces the list and selects its first entry, or nothing
// when it is empty.
func (s *State) SetTimelines(names []string) {
	s.Timelines = names
	s.CurrentTimeline = ""
	if len(names) > 0 {
		s.CurrentTimeline = names[0]
	}
}

// Select switches to name, which must be one of the fetched timelines. An
// empty name clears the selection.
func (s *State) Select(name string) error {
	if name != "" && !slices.Contains(s.Timelines, name) {
		return ErrUnknownTimeline
	}
	s.CurrentTimeline = name
	return nil
}

func (s *State) ClearErrors() {
	s.AuthError = ""
	s.TimelineError = ""
}

// FindEvent looks up id in the last rendered list.
func (s *State) FindEvent(id string) (models.Event, bool) {
	for _, e := range s.Events {
		if e.EventID == id {
			return e, true
		}
	}
	return models.Event{}, false
}

// Reset returns to the logged-out state.
func (s *State) Reset() {
	*s = State{}
}
