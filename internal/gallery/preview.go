package gallery

import (
	"time"

	"gallery/internal/anim"
)

// Thumbnail card dimensions
const (
	PreviewWidth  = 360
	PreviewHeight = 360
)

// Preview is the thumbnail lifecycle of one image: Loading or Ready.
type Preview interface {
	isPreview()
}

// Loading means a thumbnail decode was requested and has not completed.
type Loading struct{}

// Ready holds a decoded thumbnail.
type Ready struct {
	Thumbnail *Thumbnail
}

func (Loading) isPreview() {}
func (Ready) isPreview()   {}

// Thumbnail is a renderable thumbnail with its fade-in and hover-zoom tracks.
type Thumbnail struct {
	Handle Handle
	FadeIn anim.Animation
	Zoom   anim.Animation
}

func newThumbnail(h Handle, at time.Time, d time.Duration) *Thumbnail {
	return &Thumbnail{
		Handle: h,
		FadeIn: anim.New(false).Duration(d).Go(true, at),
		Zoom:   anim.New(false).Duration(d).Easing(anim.EaseInOut),
	}
}

// Opacity is the fade-in value in [0,1].
func (t *Thumbnail) Opacity(now time.Time) float32 {
	return t.FadeIn.Interpolate(0.0, 1.0, now)
}

// Scale is the hover zoom factor in [1,1.02].
func (t *Thumbnail) Scale(now time.Time) float32 {
	return t.Zoom.Interpolate(1.0, 1.02, now)
}

func (t *Thumbnail) isAnimating(now time.Time) bool {
	return t.FadeIn.IsAnimating(now) || t.Zoom.IsAnimating(now)
}

func previewAnimating(p Preview, now time.Time) bool {
	switch p := p.(type) {
	case Ready:
		return p.Thumbnail.isAnimating(now)
	case Loading:
		return false
	default:
		return false
	}
}
