// Package render turns the events of a timeline into date-grouped rows and
// writes them to the terminal.
package render

import (
	"context"
	"sort"
	"time"

	"github.com/nmchugh17/evidence-timeline/internal/client/media"
	"github.com/nmchugh17/evidence-timeline/internal/client/models"
	"github.com/nmchugh17/evidence-timeline/internal/logging"
)

// Media is the displayable attachment of a row.
type Media struct {
	Kind media.Kind
	Key  string
	URL  string
}

type Row struct {
	Event models.Event
	// Time is the event timestamp rendered for display.
	Time     string
	Media    *Media
	Editable bool
}

// DateGroup holds the rows of one calendar day in server order.
type DateGroup struct {
	Day   string
	Label string
	Rows  []Row
}

type Options struct {
	IsAdmin     bool
	HasTimeline bool
	Media       media.Store
	Logger      logging.Logger
	// Location renders event times; nil means time.Local.
	Location *time.Location
}

// Build groups events by calendar day. Days are ordered lexicographically,
// which is chronological for ISO dates.
func Build(ctx context.Context, events []models.Event, opts Options) []DateGroup {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	byDay := make(map[string][]models.Event)
	for _, e := range events {
		d := e.Day()
		byDay[d] = append(byDay[d], e)
	}

	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Strings(days)

	groups := make([]DateGroup, 0, len(days))
	for _, d := range days {
		g := DateGroup{Day: d, Label: FormatDay(d)}
		for _, e := range byDay[d] {
			g.Rows = append(g.Rows, Row{
				Event:    e,
				Time:     FormatTime(e.Date, loc),
				Media:    resolveMedia(ctx, e, opts),
				Editable: opts.IsAdmin && opts.HasTimeline,
			})
		}
		groups = append(groups, g)
	}
	return groups
}

func resolveMedia(ctx context.Context, e models.Event, opts Options) *Media {
	key := e.MediaKey()
	if key == "" {
		return nil
	}

	kind := media.KindFromKey(key)
	if kind == media.KindUnsupported {
		logWarn(ctx, opts.Logger, "unsupported media type", "event_id", e.EventID, "key", key)
		return nil
	}
	if opts.Media == nil {
		return &Media{Kind: kind, Key: key}
	}

	u, err := opts.Media.URL(ctx, key, kind)
	if err != nil {
		logWarn(ctx, opts.Logger, "resolve media url", "event_id", e.EventID, "key", key, "err", err)
		return nil
	}
	return &Media{Kind: kind, Key: key, URL: u}
}

func logWarn(ctx context.Context, l logging.Logger, msg string, args ...any) {
	if l != nil {
		l.Warn(ctx, msg, args...)
	}
}
