// Package cropper implements the attachment editor: the state machine that
// turns a picked file into the original and cropped attachments of an event.
//
// Images go through a cropping Widget; anything else is attached as is.
//
//	Idle --Choose(image)--> FileChosen --Confirm--> Cropped
//	Idle --Choose(other)--> Cropped
//	any  --Reset--> Idle
package cropper

import (
	"errors"
	"image"
	"path"

	"github.com/nmchugh17/evidence-timeline/internal/client/models"
)

const (
	minCropWidth  = 10
	minCropHeight = 10

	defaultImageName = "image.png"
	defaultImageMIME = "image/png"
)

var (
	ErrInvalidCrop = errors.New("invalid crop area")
	ErrNoImage     = errors.New("no image loaded for cropping")
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFileChosen
	PhaseCropped
)

func (p Phase) String() string {
	switch p {
	case PhaseFileChosen:
		return "file chosen"
	case PhaseCropped:
		return "cropped"
	default:
		return "idle"
	}
}

type Editor struct {
	widget  Widget
	aspect  float64
	phase   Phase
	session Session

	// source is the image currently in the widget. original is nil when
	// re-cropping an existing upload so that only the crop is re-sent.
	source   *models.File
	original *models.File
	cropped  *models.File
}

func NewEditor(w Widget) *Editor {
	return &Editor{widget: w}
}

func (e *Editor) Phase() Phase { return e.phase }

func (e *Editor) AspectRatio() float64 { return e.aspect }

// SetAspectRatio stores r for future sessions and applies it to the live
// one, if any.
func (e *Editor) SetAspectRatio(r float64) {
	e.aspect = r
	if e.session != nil {
		e.session.SetAspectRatio(r)
	}
}

// Choose starts editing a freshly picked file.
func (e *Editor) Choose(f *models.File) error {
	e.Reset()
	if !f.IsImage() {
		e.original, e.cropped = f, f
		e.phase = PhaseCropped
		return nil
	}
	if err := e.load(f); err != nil {
		return err
	}
	e.original = f
	return nil
}

// LoadExisting re-opens the widget on an image already stored for the
// event being edited. Non-image attachments are left alone.
func (e *Editor) LoadExisting(f *models.File) error {
	e.Reset()
	if !f.IsImage() {
		return nil
	}
	return e.load(f)
}

func (e *Editor) load(f *models.File) error {
	s, err := e.widget.Load(f.Data, Options{
		AspectRatio: e.aspect,
		MinWidth:    minCropWidth,
		MinHeight:   minCropHeight,
	})
	if err != nil {
		return err
	}
	e.session = s
	e.source = f
	e.phase = PhaseFileChosen
	return nil
}

func (e *Editor) SetCropBox(r image.Rectangle) error {
	if e.session == nil {
		return ErrNoImage
	}
	e.session.SetCropBox(r)
	return nil
}

// CropBox reports the live crop box and the image size.
func (e *Editor) CropBox() (box image.Rectangle, size image.Point, ok bool) {
	if e.session == nil {
		return image.Rectangle{}, image.Point{}, false
	}
	return e.session.CropBox(), e.session.ImageSize(), true
}

// Confirm produces the cropped file. On ErrInvalidCrop nothing changes.
func (e *Editor) Confirm() error {
	if e.session == nil {
		return ErrNoImage
	}

	name := e.source.Name
	if name == "" {
		name = defaultImageName
	}
	mimeType := e.source.MIMEType
	if mimeType == "" {
		mimeType = defaultImageMIME
	}

	data, produced, err := e.session.Confirm(mimeType)
	if err != nil {
		return err
	}

	e.cropped = &models.File{Name: "cropped_" + path.Base(name), MIMEType: produced, Data: data}
	e.session.Destroy()
	e.session = nil
	e.phase = PhaseCropped
	return nil
}

// Attachments returns what will be sent with the event. Either may be nil.
func (e *Editor) Attachments() (original, cropped *models.File) {
	return e.original, e.cropped
}

// Reset tears down the widget and forgets every transient file. The
// aspect ratio setting is kept.
func (e *Editor) Reset() {
	if e.session != nil {
		e.session.Destroy()
	}
	e.session = nil
	e.source, e.original, e.cropped = nil, nil, nil
	e.phase = PhaseIdle
}
