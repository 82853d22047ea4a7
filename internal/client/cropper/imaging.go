package cropper

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

const initialCoverage = 0.8

type imagingWidget struct{}

// NewImagingWidget returns a Widget backed by disintegration/imaging.
func NewImagingWidget() Widget {
	return imagingWidget{}
}

func (imagingWidget) Load(data []byte, opts Options) (Session, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	s := &imagingSession{img: img, opts: opts}
	s.box = s.initialBox()
	return s, nil
}

type imagingSession struct {
	img  image.Image
	opts Options
	box  image.Rectangle
}

func (s *imagingSession) bounds() image.Rectangle {
	if s.img == nil {
		return image.Rectangle{}
	}
	b := s.img.Bounds()
	return image.Rect(0, 0, b.Dx(), b.Dy())
}

func (s *imagingSession) ImageSize() image.Point {
	return s.bounds().Size()
}

func (s *imagingSession) CropBox() image.Rectangle {
	return s.box
}

// initialBox is the centred box covering 80% of each dimension, shrunk on
// one side to honour the aspect ratio.
func (s *imagingSession) initialBox() image.Rectangle {
	b := s.bounds()
	w := float64(b.Dx()) * initialCoverage
	h := float64(b.Dy()) * initialCoverage
	if r := s.opts.AspectRatio; r > 0 && h > 0 {
		if w/h > r {
			w = h * r
		} else {
			h = w / r
		}
	}
	return s.centered(b, int(math.Round(w)), int(math.Round(h)))
}

func (s *imagingSession) centered(b image.Rectangle, w, h int) image.Rectangle {
	x := (b.Dx() - w) / 2
	y := (b.Dy() - h) / 2
	return s.enforceMin(image.Rect(x, y, x+w, y+h))
}

// enforceMin grows a non-empty box to the minimum size, staying inside the
// image where possible.
func (s *imagingSession) enforceMin(r image.Rectangle) image.Rectangle {
	b := s.bounds()
	if r.Empty() {
		return image.Rectangle{}
	}
	if r.Dx() < s.opts.MinWidth {
		r.Max.X = r.Min.X + s.opts.MinWidth
		if r.Max.X > b.Max.X {
			r = r.Add(image.Pt(b.Max.X-r.Max.X, 0))
		}
	}
	if r.Dy() < s.opts.MinHeight {
		r.Max.Y = r.Min.Y + s.opts.MinHeight
		if r.Max.Y > b.Max.Y {
			r = r.Add(image.Pt(0, b.Max.Y-r.Max.Y))
		}
	}
	return r.Intersect(b)
}

func (s *imagingSession) SetCropBox(r image.Rectangle) {
	r = r.Canon()
	if ratio := s.opts.AspectRatio; ratio > 0 && !r.Empty() {
		r.Max.Y = r.Min.Y + int(math.Round(float64(r.Dx())/ratio))
	}
	s.box = s.enforceMin(r.Intersect(s.bounds()))
}

func (s *imagingSession) SetAspectRatio(ratio float64) {
	s.opts.AspectRatio = ratio
	if ratio <= 0 || s.box.Empty() {
		return
	}
	c := s.box.Min.Add(s.box.Size().Div(2))
	w := float64(s.box.Dx())
	h := w / ratio
	b := s.bounds()
	if h > float64(b.Dy()) {
		h = float64(b.Dy())
		w = h * ratio
	}
	half := image.Pt(int(math.Round(w/2)), int(math.Round(h/2)))
	r := image.Rectangle{Min: c.Sub(half), Max: c.Add(half)}
	// slide back inside the image before clipping
	if r.Min.X < 0 {
		r = r.Add(image.Pt(-r.Min.X, 0))
	}
	if r.Min.Y < 0 {
		r = r.Add(image.Pt(0, -r.Min.Y))
	}
	if r.Max.X > b.Max.X {
		r = r.Add(image.Pt(b.Max.X-r.Max.X, 0))
	}
	if r.Max.Y > b.Max.Y {
		r = r.Add(image.Pt(0, b.Max.Y-r.Max.Y))
	}
	s.box = s.enforceMin(r.Intersect(b))
}

func (s *imagingSession) Confirm(mimeType string) ([]byte, string, error) {
	if s.img == nil {
		return nil, "", errors.New("session destroyed")
	}
	if s.box.Empty() {
		return nil, "", ErrInvalidCrop
	}

	cropped := imaging.Crop(s.img, s.box.Add(s.img.Bounds().Min))
	format, produced := encoderFor(mimeType)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, cropped, format); err != nil {
		return nil, "", fmt.Errorf("encode %s: %w", produced, err)
	}
	return buf.Bytes(), produced, nil
}

func (s *imagingSession) Destroy() {
	s.img = nil
	s.box = image.Rectangle{}
}

func encoderFor(mimeType string) (imaging.Format, string) {
	switch mimeType {
	case "image/jpeg", "image/jpg":
		return imaging.JPEG, "image/jpeg"
	case "image/gif":
		return imaging.GIF, "image/gif"
	default:
		return imaging.PNG, "image/png"
	}
}
