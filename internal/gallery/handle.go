// Package gallery holds the gallery's state: the ordered image list, the
// thumbnail preview cache and the full-resolution viewer. A Controller is the
// only mutator; it is driven one Message at a time from a single goroutine.
package gallery

import (
	"image"

	"gallery/internal/source"
)

// Handle is a renderable image built from a decoded buffer.
type Handle interface {
	Bounds() image.Rectangle
}

// HandleFunc builds a Handle from a decoded buffer. It runs on the controller goroutine.
type HandleFunc func(source.Rgba) Handle

// BufferHandle wraps the buffer itself; used when no rendering toolkit is attached.
func BufferHandle(rgba source.Rgba) Handle {
	return rgba.Image()
}

// release frees toolkit resources held by h, if it holds any.
func release(h Handle) {
	if d, ok := h.(interface{ Deallocate() }); ok {
		d.Deallocate()
	}
}
