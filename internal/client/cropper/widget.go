package cropper

import "image"

// Options configure a cropping session.
type Options struct {
	// AspectRatio is width/height; 0 means free-form.
	AspectRatio float64
	MinWidth    int
	MinHeight   int
}

// Widget turns encoded image bytes into an interactive cropping session.
type Widget interface {
	Load(data []byte, opts Options) (Session, error)
}

// Session is one image loaded into the widget. Crop boxes are in image
// pixel coordinates with the origin at the top-left corner.
type Session interface {
	ImageSize() image.Point
	CropBox() image.Rectangle
	SetCropBox(r image.Rectangle)
	SetAspectRatio(r float64)
	// Confirm encodes the cropped area. mimeType selects the encoder; the
	// MIME type actually produced is returned.
	Confirm(mimeType string) ([]byte, string, error)
	Destroy()
}
