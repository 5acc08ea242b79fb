package gallery

import (
	"time"

	"gallery/internal/source"
)

// Message is an event handled by Controller.Update.
type Message interface {
	isMessage()
}

type (
	// LoadDirectory replaces the gallery with the images found in Path.
	LoadDirectory struct{ Path string }
	// Reload rescans the current directory.
	Reload struct{}
	// SortChanged reloads the current directory in a new order.
	SortChanged struct{ Strategy source.SortStrategy }
	// ImagesListed delivers a background listing.
	ImagesListed struct{ source.Listing }
	// ImageVisible reports that a card entered the viewport.
	ImageVisible struct{ ID source.ID }
	// ThumbnailHovered reports the pointer entering or leaving a card.
	ThumbnailHovered struct {
		ID      source.ID
		Entered bool
	}
	// Open shows an image in the viewer.
	Open struct{ ID source.ID }
	// Close hides the viewer.
	Close struct{}
	// Navigate steps the viewer through the image list.
	Navigate struct{ Direction Direction }
	// Decoded delivers a background decode.
	Decoded struct{ source.Result }
	// Tick advances the frame clock.
	Tick struct{ Now time.Time }
)

func (LoadDirectory) isMessage()    {}
func (Reload) isMessage()           {}
func (SortChanged) isMessage()      {}
func (ImagesListed) isMessage()     {}
func (ImageVisible) isMessage()     {}
func (ThumbnailHovered) isMessage() {}
func (Open) isMessage()             {}
func (Close) isMessage()            {}
func (Navigate) isMessage()         {}
func (Decoded) isMessage()          {}
func (Tick) isMessage()             {}
