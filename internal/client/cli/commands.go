package cli

import (
	"context"
	"errors"

	"github.com/nmchugh17/evidence-timeline/internal/client/state"
)

const msgUnavailable = "This action is currently unavailable."

var (
	errUnknownCommand = errors.New("unknown command")
	errUnavailable    = errors.New("action unavailable")
)

type access int

const (
	loggedOut access = iota
	loggedIn
)

type command struct {
	name  string
	usage string

	access access
	// admin hides the command from viewers; super from everyone but super
	// admins.
	admin bool
	super bool

	// gate reports whether the control behind the command is enabled.
	gate func(state.Controls) bool
	run  func(a *App, ctx context.Context, args []string) error
}

func timelineSelect(c state.Controls) bool { return c.TimelineSelect }
func addTimeline(c state.Controls) bool { return c.AddTimeline }
func logout(c state.Controls) bool { return c.Logout }
func interactive(c state.Controls) bool { return c.Interactive }

func commands() []command {
	return []command{
		{name: "login", usage: "login", access: loggedOut, run: (*App).Login},
		{name: "register", usage: "register", access: loggedOut, run: (*App).Register},

		{name: "timelines", usage: "timelines", access: loggedIn, gate: timelineSelect, run: (*App).Timelines},
		{name: "select", usage: "select [name]", access: loggedIn, gate: timelineSelect, run: (*App).Select},
		{name: "list", usage: "list", access: loggedIn, gate: timelineSelect, run: (*App).List},
		{name: "addtimeline", usage: "addtimeline <name>", access: loggedIn, admin: true, gate: addTimeline, run: (*App).AddTimeline},
		{name: "view", usage: "view <eventId>", access: loggedIn, gate: interactive, run: (*App).View},

		{name: "add", usage: "add", access: loggedIn, admin: true, gate: interactive, run: (*App).Add},
		{name: "date", usage: "date <value>", access: loggedIn, admin: true, gate: interactive, run: (*App).SetDate},
		{name: "desc", usage: "desc <text>", access: loggedIn, admin: true, gate: interactive, run: (*App).SetDescription},
		{name: "attach", usage: "attach <path>", access: loggedIn, admin: true, gate: interactive, run: (*App).Attach},
		{name: "aspect", usage: "aspect <free|16:9|4:3|1:1|ratio>", access: loggedIn, admin: true, gate: interactive, run: (*App).Aspect},
		{name: "cropbox", usage: "cropbox <x> <y> <w> <h>", access: loggedIn, admin: true, gate: interactive, run: (*App).CropBox},
		{name: "crop", usage: "crop", access: loggedIn, admin: true, gate: interactive, run: (*App).Crop},
		{name: "form", usage: "form", access: loggedIn, admin: true, gate: interactive, run: (*App).ShowForm},
		{name: "submit", usage: "submit", access: loggedIn, admin: true, gate: interactive, run: (*App).Submit},
		{name: "clear", usage: "clear", access: loggedIn, admin: true, gate: interactive, run: (*App).Clear},
		{name: "edit", usage: "edit <eventId>", access: loggedIn, admin: true, gate: interactive, run: (*App).Edit},
		{name: "delete", usage: "delete <eventId>", access: loggedIn, admin: true, gate: interactive, run: (*App).Delete},

		{name: "useradd", usage: "useradd", access: loggedIn, super: true, gate: interactive, run: (*App).UserAdd},
		{name: "userupdate", usage: "userupdate <email>", access: loggedIn, super: true, gate: interactive, run: (*App).UserUpdate},
		{name: "userdel", usage: "userdel <email>", access: loggedIn, super: true, gate: interactive, run: (*App).UserDelete},

		{name: "logout", usage: "logout", access: loggedIn, gate: logout, run: (*App).Logout},
	}
}

func (a *App) visible(c command) bool {
	if (c.access == loggedIn) != a.state.LoggedIn() {
		return false
	}
	if c.admin && !a.state.IsAdmin() {
		return false
	}
	if c.super && !a.state.User.IsSuperAdmin() {
		return false
	}
	return true
}

func (a *App) Help() []string {
	var out []string
	for _, c := range commands() {
		if a.visible(c) {
			out = append(out, c.usage)
		}
	}
	return out
}

// Exec dispatches one REPL command. Commands whose control is disabled are
// refused.
func (a *App) Exec(ctx context.Context, name string, args []string) error {
	for _, c := range commands() {
		if c.name != name || !a.visible(c) {
			continue
		}
		if c.gate != nil && !c.gate(state.Derive(a.state)) {
			a.println(msgUnavailable)
			return errUnavailable
		}
		return c.run(a, ctx, args)
	}
	return errUnknownCommand
}
