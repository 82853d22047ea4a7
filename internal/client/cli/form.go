package cli

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/nmchugh17/evidence-timeline/internal/client/cropper"
	"github.com/nmchugh17/evidence-timeline/internal/client/media"
	"github.com/nmchugh17/evidence-timeline/internal/client/models"
	"github.com/nmchugh17/evidence-timeline/internal/client/services"
)

const (
	msgInvalidCrop  = "Invalid crop area. Please adjust the crop box and try again."
	msgReadFile     = "Error reading file"
	msgEditTimeline = "Please select a timeline to edit events."
)

// readFile is a test seam for loading attachments from disk.
var readFile = models.ReadFile

func (a *App) SetDate(_ context.Context, args []string) error {
	a.state.Form.Date = strings.TrimSpace(strings.Join(args, " "))
	return nil
}

func (a *App) SetDescription(_ context.Context, args []string) error {
	a.state.Form.Description = strings.Join(args, " ")
	return nil
}

// Attach picks a file. Images open the crop widget; anything else is
// attached as is.
func (a *App) Attach(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println("Usage: attach <path>")
		return nil
	}
	f, err := readFile(strings.Join(args, " "))
	if err == nil {
		err = a.editor.Choose(f)
	}
	if err != nil {
		a.logger.Error(ctx, "attach file", "error", err)
		a.renderer.Error(msgReadFile)
		return err
	}
	a.describeAttachment()
	return nil
}

func (a *App) describeAttachment() {
	switch a.editor.Phase() {
	case cropper.PhaseFileChosen:
		box, size, _ := a.editor.CropBox()
		a.println(fmt.Sprintf("Image %dx%d loaded. Crop box %s (aspect %s). Use cropbox/aspect, then crop.",
			size.X, size.Y, formatBox(box), cropper.FormatAspectRatio(a.editor.AspectRatio())))
	case cropper.PhaseCropped:
		orig, cropped := a.editor.Attachments()
		if orig != nil && orig == cropped {
			a.println(fmt.Sprintf("Attached %s (%s).", orig.Name, orig.MIMEType))
			return
		}
		a.println(fmt.Sprintf("Cropped image ready: %s (%s).", cropped.Name, cropped.MIMEType))
	default:
		a.println("No attachment.")
	}
}

func formatBox(r image.Rectangle) string {
	return fmt.Sprintf("x=%d y=%d w=%d h=%d", r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

func (a *App) Aspect(_ context.Context, args []string) error {
	r, err := cropper.ParseAspectRatio(strings.Join(args, " "))
	if err != nil {
		a.println("Invalid aspect ratio. Use free, 16:9, 4:3, 1:1 or a decimal.")
		return err
	}
	a.editor.SetAspectRatio(r)
	a.println("Aspect ratio: " + cropper.FormatAspectRatio(r))
	if a.editor.Phase() == cropper.PhaseFileChosen {
		box, _, _ := a.editor.CropBox()
		a.println("Crop box " + formatBox(box))
	}
	return nil
}

func (a *App) CropBox(_ context.Context, args []string) error {
	if len(args) != 4 {
		a.println("Usage: cropbox <x> <y> <w> <h>")
		return nil
	}
	var n [4]int
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			a.println("Usage: cropbox <x> <y> <w> <h>")
			return err
		}
		n[i] = v
	}
	if err := a.editor.SetCropBox(image.Rect(n[0], n[1], n[0]+n[2], n[1]+n[3])); err != nil {
		a.println("No image loaded for cropping.")
		return err
	}
	box, _, _ := a.editor.CropBox()
	a.println("Crop box " + formatBox(box))
	return nil
}

// Crop confirms the crop box. On failure the widget stays open.
func (a *App) Crop(ctx context.Context, _ []string) error {
	err := a.editor.Confirm()
	switch {
	case err == nil:
		a.describeAttachment()
		return nil
	case errors.Is(err, cropper.ErrNoImage):
		a.println("No image loaded for cropping.")
	default:
		a.logger.Warn(ctx, "crop failed", "error", err)
		a.renderer.Error(msgInvalidCrop)
	}
	return err
}

func (a *App) ShowForm(_ context.Context, _ []string) error {
	f := a.state.Form
	a.println("Timeline:    " + a.state.CurrentLabel())
	a.println("Date:        " + f.Date)
	a.println("Description: " + f.Description)
	if f.Editing() {
		a.println("Editing:     " + f.EventID)
	}
	a.println("Attachment:  " + a.editor.Phase().String())
	a.println("Aspect:      " + cropper.FormatAspectRatio(a.editor.AspectRatio()))
	a.println("Submit:      " + f.SubmitLabel())
	return nil
}

// Submit sends the form as a create or an update. An image that was picked
// but never cropped goes out as the original only. The form is kept on
// failure so the user can retry.
func (a *App) Submit(ctx context.Context, _ []string) error {
	orig, cropped := a.editor.Attachments()
	p := models.EventPayload{
		Date:         a.state.Form.Date,
		Description:  a.state.Form.Description,
		TimelineName: a.state.CurrentTimeline,
	}
	if orig != nil {
		p.OriginalFile = orig.DataURL()
	}
	if cropped != nil {
		p.CroppedFile = cropped.DataURL()
	}

	label := a.state.Form.SubmitLabel()
	err := a.withSpinner(ctx, func(ctx context.Context) error {
		return a.eventService.Save(ctx, a.state.User, a.state.Form.EventID, p)
	})
	if err != nil {
		a.setTimelineError(services.Message(err))
		return err
	}

	a.resetForm()
	a.state.TimelineError = ""
	if label == "Update Event" {
		a.println("Event updated.")
	} else {
		a.println("Event added.")
	}
	a.renderTimeline(ctx)
	return nil
}

// Add walks through the form with prompts and submits it.
func (a *App) Add(ctx context.Context, _ []string) error {
	date, err := getSimpleText(a.reader, "Enter date (YYYY-MM-DDTHH:MM)", a.out)
	if err != nil {
		return err
	}
	desc, err := getMultiline(a.reader, "Enter description", a.out)
	if err != nil {
		return err
	}
	a.state.Form.Date, a.state.Form.Description = date, desc

	path, err := getSimpleText(a.reader, "Attachment path (empty for none)", a.out)
	if err != nil {
		return err
	}
	if path != "" {
		if err := a.Attach(ctx, []string{path}); err != nil {
			return err
		}
		if a.editor.Phase() == cropper.PhaseFileChosen {
			if err := a.promptCrop(ctx); err != nil {
				return err
			}
		}
	}
	return a.Submit(ctx, nil)
}

func (a *App) promptCrop(ctx context.Context) error {
	for {
		v, err := getSimpleText(a.reader, "Crop box as x y w h (empty to keep)", a.out)
		if err != nil {
			return err
		}
		if v != "" {
			if err := a.CropBox(ctx, strings.Fields(v)); err != nil {
				continue
			}
		}
		if err := a.Crop(ctx, nil); err == nil {
			return nil
		}
	}
}

// Clear resets the form, the attachment editor, edit mode and the error
// slot.
func (a *App) Clear(_ context.Context, _ []string) error {
	a.resetForm()
	a.state.TimelineError = ""
	a.println("Form cleared.")
	return nil
}

// Edit loads a rendered event into the form. Image originals are re-opened
// in the crop widget.
func (a *App) Edit(ctx context.Context, args []string) error {
	if a.state.CurrentTimeline == "" {
		a.renderer.Error(msgEditTimeline)
		return nil
	}
	if len(args) != 1 {
		a.println("Usage: edit <eventId>")
		return nil
	}
	ev, ok := a.state.FindEvent(args[0])
	if !ok {
		a.println("Event not found: " + args[0])
		return nil
	}

	a.resetForm()
	a.state.Form.Date = ev.Date
	a.state.Form.Description = ev.Description
	a.state.Form.EventID = ev.EventID
	if ev.TimelineName != "" {
		if err := a.state.Select(ev.TimelineName); err != nil {
			a.logger.Warn(ctx, "event timeline not in selector", "timeline", ev.TimelineName)
		}
	}

	if media.KindFromKey(ev.OriginalFileKey) == media.KindImage {
		var f *models.File
		err := a.withSpinner(ctx, func(ctx context.Context) (err error) {
			f, err = a.media.Fetch(ctx, ev.OriginalFileKey)
			return err
		})
		if err == nil {
			err = a.editor.LoadExisting(f)
		}
		if err != nil {
			a.logger.Error(ctx, "load image for cropping", "key", ev.OriginalFileKey, "error", err)
			a.renderer.Error(msgReadFile)
		}
	}

	a.println(fmt.Sprintf("Editing event %s on %s.", ev.EventID, a.state.CurrentLabel()))
	if a.editor.Phase() == cropper.PhaseFileChosen {
		a.describeAttachment()
	}
	a.println(`Use date/desc/attach/crop, then submit ("` + a.state.Form.SubmitLabel() + `").`)
	return nil
}

// Delete removes a rendered event after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: delete <eventId>")
		return nil
	}
	ok, err := getConfirmation(a.reader, "Are you sure you want to delete this event?", a.out)
	if err != nil || !ok {
		return err
	}

	err = a.withSpinner(ctx, func(ctx context.Context) error {
		return a.eventService.Delete(ctx, a.state.User, args[0], a.state.CurrentTimeline)
	})
	if err != nil {
		a.setTimelineError(services.Message(err))
		return err
	}

	a.println("Event deleted.")
	a.renderTimeline(ctx)
	return nil
}
