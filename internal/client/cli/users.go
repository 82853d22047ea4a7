package cli

import (
	"context"

	"github.com/nmchugh17/evidence-timeline/internal/client/models"
	"github.com/nmchugh17/evidence-timeline/internal/client/services"
	"github.com/nmchugh17/evidence-timeline/internal/common"
)

const rolePrompt = "Enter role (super_admin, timeline_admin, viewer)"

func (a *App) UserAdd(ctx context.Context, _ []string) error {
	var req models.UserRequest
	var err error

	if req.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	role, err := getSimpleText(a.reader, rolePrompt, a.out)
	if err != nil {
		return err
	}
	req.Role = models.Role(role)

	timelines, err := getSimpleText(a.reader, "Enter timelines (comma-separated)", a.out)
	if err != nil {
		return err
	}
	req.Timelines = SplitList(timelines)

	return a.userCall(ctx, func(ctx context.Context) (string, error) {
		return a.userService.Create(ctx, a.state.User, req)
	})
}

// UserUpdate changes only the fields that are entered.
func (a *App) UserUpdate(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: userupdate <email>")
		return nil
	}

	var req models.UserRequest
	a.println("Leave a field empty to keep it unchanged.")
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	role, err := getSimpleText(a.reader, rolePrompt, a.out)
	if err != nil {
		return err
	}
	req.Role = models.Role(role)

	timelines, err := getSimpleText(a.reader, "Enter timelines (comma-separated)", a.out)
	if err != nil {
		return err
	}
	req.Timelines = SplitList(timelines)

	return a.userCall(ctx, func(ctx context.Context) (string, error) {
		return a.userService.Update(ctx, a.state.User, args[0], req)
	})
}

func (a *App) UserDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: userdel <email>")
		return nil
	}
	ok, err := getConfirmation(a.reader, "Are you sure you want to delete user "+args[0]+"?", a.out)
	if err != nil || !ok {
		return err
	}

	return a.userCall(ctx, func(ctx context.Context) (string, error) {
		return a.userService.Delete(ctx, a.state.User, args[0])
	})
}

func (a *App) userCall(ctx context.Context, fn func(ctx context.Context) (string, error)) error {
	var msg string
	err := a.withSpinner(ctx, func(ctx context.Context) (err error) {
		msg, err = fn(ctx)
		return err
	})
	if err != nil {
		a.renderer.Error(services.Message(err))
		return err
	}
	a.println(msg)
	return nil
}
