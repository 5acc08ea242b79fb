// Package source discovers images in a directory and decodes them to RGBA8
// pixel buffers, either inline or through a background Pool.
package source

import (
	"fmt"
	"image"
)

// ID identifies an image within one directory scan. IDs are dense and start at 0.
type ID int

// ImageRef is an immutable reference to one discovered image.
type ImageRef struct {
	ID       ID
	Location Location
}

func (r ImageRef) String() string {
	if r.Location == nil {
		return fmt.Sprintf("#%d", r.ID)
	}
	return fmt.Sprintf("#%d %s", r.ID, r.Location)
}

// Rgba is a decoded image: row-major, straight-alpha RGBA8, len(Pixels) == Width*Height*4.
type Rgba struct {
	Width  int
	Height int
	Pixels []byte
}

// Image wraps the buffer as an *image.NRGBA without copying.
func (r Rgba) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    r.Pixels,
		Stride: r.Width * 4,
		Rect:   image.Rect(0, 0, r.Width, r.Height),
	}
}

// Valid reports whether the buffer length matches its dimensions.
func (r Rgba) Valid() bool {
	return r.Width > 0 && r.Height > 0 && len(r.Pixels) == r.Width*r.Height*4
}

// Size is the decode target: Original or Thumbnail.
type Size interface {
	isSize()
}

// Original decodes at the source resolution.
type Original struct{}

// Thumbnail decodes to fit within Width x Height, preserving aspect ratio.
type Thumbnail struct {
	Width  int
	Height int
}

func (Original) isSize()  {}
func (Thumbnail) isSize() {}

func (Original) String() string    { return "original" }
func (t Thumbnail) String() string { return fmt.Sprintf("thumbnail %dx%d", t.Width, t.Height) }
