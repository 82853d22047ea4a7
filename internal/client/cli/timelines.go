package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/nmchugh17/evidence-timeline/internal/client/models"
	"github.com/nmchugh17/evidence-timeline/internal/client/render"
	"github.com/nmchugh17/evidence-timeline/internal/client/services"
	"github.com/nmchugh17/evidence-timeline/internal/client/state"
	"github.com/nmchugh17/evidence-timeline/internal/common"
	"github.com/nmchugh17/evidence-timeline/internal/filex"
)

const msgSelectTimeline = "Please select a timeline to view or manage events."

// refreshTimelines refetches the selector, selects the first timeline and
// renders it. Failures stay in the timeline error slot.
func (a *App) refreshTimelines(ctx context.Context) {
	var names []string
	err := a.withSpinner(ctx, func(ctx context.Context) (err error) {
		names, err = a.timelineService.List(ctx, a.state.User)
		return err
	})
	if err != nil {
		a.setTimelineError(services.Message(err))
		return
	}

	a.state.SetTimelines(names)
	a.renderTimeline(ctx)
}

// renderTimeline fetches and prints the events of the current timeline.
// The previous list is dropped whatever the outcome.
func (a *App) renderTimeline(ctx context.Context) {
	a.state.Events = nil

	if a.state.CurrentTimeline == "" {
		if a.state.IsAdmin() {
			a.renderer.Notice(msgSelectTimeline)
		}
		return
	}

	var events []models.Event
	err := a.withSpinner(ctx, func(ctx context.Context) (err error) {
		events, err = a.eventService.List(ctx, a.state.User, a.state.CurrentTimeline)
		return err
	})
	if err != nil {
		a.setTimelineError(services.Message(err))
		return
	}

	a.state.Events = events
	groups := render.Build(ctx, events, render.Options{
		IsAdmin:     a.state.IsAdmin(),
		HasTimeline: true,
		Media:       a.media,
		Logger:      a.logger,
	})
	a.renderer.Timeline(a.state.CurrentLabel(), groups)
}

// Timelines lists the selector entries, marking the current one.
func (a *App) Timelines(_ context.Context, _ []string) error {
	if len(a.state.Timelines) == 0 {
		a.println(a.state.Label(""))
		return nil
	}
	for _, name := range a.state.Timelines {
		marker := "  "
		if name == a.state.CurrentTimeline {
			marker = "* "
		}
		a.println(marker + a.state.Label(name))
	}
	return nil
}

// Select switches the current timeline and re-renders. No argument clears
// the selection.
func (a *App) Select(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if err := a.state.Select(name); err != nil {
		if errors.Is(err, state.ErrUnknownTimeline) {
			a.println("Unknown timeline: " + name)
		}
		return err
	}
	a.state.ClearErrors()
	a.renderTimeline(ctx)
	return nil
}

// List re-renders the current timeline.
func (a *App) List(ctx context.Context, _ []string) error {
	a.renderTimeline(ctx)
	return nil
}

// AddTimeline creates a timeline and refreshes the selector.
func (a *App) AddTimeline(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	err := a.withSpinner(ctx, func(ctx context.Context) error {
		return a.timelineService.Add(ctx, a.state.User, name)
	})
	if err != nil {
		a.setTimelineError(services.Message(err))
		return err
	}

	a.state.TimelineError = ""
	a.println("Timeline added successfully.")
	a.refreshTimelines(ctx)
	return nil
}

// View downloads the attachment of a rendered event into the download
// directory.
func (a *App) View(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: view <eventId>")
		return nil
	}
	ev, ok := a.state.FindEvent(args[0])
	if !ok {
		a.println("Event not found: " + args[0])
		return nil
	}
	key := ev.MediaKey()
	if key == "" {
		a.println("This event has no attachment.")
		return nil
	}

	var f *models.File
	err := a.withSpinner(ctx, func(ctx context.Context) (err error) {
		f, err = a.media.Fetch(ctx, key)
		return err
	})
	if err != nil {
		a.logger.Error(ctx, "download attachment", "key", key, "error", err)
		if errors.Is(err, common.ErrorNotFound) {
			a.renderer.Error("Attachment not found: " + key)
		} else {
			a.renderer.Error("Error downloading file: " + err.Error())
		}
		return err
	}

	dir, err := filex.EnsureDir(a.config.DownloadDir)
	if err != nil {
		a.renderer.Error("Error saving file: " + err.Error())
		return err
	}
	p, err := filex.WriteUnique(dir, f.Name, f.Data)
	if err != nil {
		a.renderer.Error("Error saving file: " + err.Error())
		return err
	}

	a.println("File saved to: " + p)
	return nil
}
