package gallery

import (
	"time"

	"gallery/internal/anim"
	"gallery/internal/source"
)

// Direction of sequential navigation in the viewer.
type Direction int

const (
	Prev Direction = iota
	Next
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// Viewer is the full-resolution overlay.
//
// Opening and closing are not stored states: the overlay is open while its
// background track interpolates above zero. target and index name the image
// the viewer is waiting for or showing; index always addresses the entry of
// the image list whose ID is target.
type Viewer struct {
	newHandle HandleFunc
	duration  time.Duration
	easing    anim.Easing

	image   Handle
	imageID source.ID

	hasTarget bool
	target    source.ID
	index     int
	failed    bool

	background anim.Animation
	imageFade  anim.Animation
}

// NewViewer creates a closed viewer.
func NewViewer(newHandle HandleFunc, duration time.Duration, easing anim.Easing) *Viewer {
	if newHandle == nil {
		newHandle = BufferHandle
	}
	if easing == nil {
		easing = anim.EaseInOut
	}
	return &Viewer{
		newHandle:  newHandle,
		duration:   duration,
		easing:     easing,
		background: anim.New(false).Duration(duration).Easing(easing),
		imageFade:  anim.New(false).Duration(duration).Easing(easing),
	}
}

// Open targets id at position index of the image list and starts fading the
// background in. Any displayed image is dropped so the overlay shows the
// loading state until Show delivers the target.
func (v *Viewer) Open(id source.ID, index int, at time.Time) {
	v.dropImage()
	v.imageFade = anim.New(false).Duration(v.duration).Easing(v.easing)
	v.hasTarget = true
	v.target = id
	v.index = index
	v.failed = false
	v.background.GoMut(true, at)
}

// Show installs a decoded full-resolution image for id. Results for any ID
// other than the current target are discarded and Show returns false. If the
// image for id is already displayed it is kept and its fade is not replayed.
func (v *Viewer) Show(id source.ID, rgba source.Rgba, at time.Time) bool {
	if !v.hasTarget || id != v.target {
		return false
	}
	v.failed = false
	if v.image != nil && v.imageID == id {
		// already on screen, e.g. after navigating away and back
		v.background.GoMut(true, at)
		return true
	}
	v.dropImage()
	v.image = v.newHandle(rgba)
	v.imageID = id
	v.imageFade = anim.New(false).Duration(v.duration).Easing(v.easing).Go(true, at)
	v.background.GoMut(true, at)
	return true
}

// Fail records that the decode for id failed. If id is the current target
// the overlay stays open with no image.
func (v *Viewer) Fail(id source.ID) bool {
	if !v.hasTarget || id != v.target {
		return false
	}
	v.dropImage()
	v.failed = true
	return true
}

// Close reverses both fade tracks and forgets the target. The displayed image
// is kept so it can fade out.
func (v *Viewer) Close(at time.Time) {
	v.background.GoMut(false, at)
	v.imageFade.GoMut(false, at)
	v.hasTarget = false
	v.index = 0
}

// Navigate moves the target one step in dir within images. It returns the
// new target, which the caller must request at original size, and false when
// the viewer is closed or already at the boundary. The displayed image stays
// until the new target's decode is shown.
func (v *Viewer) Navigate(dir Direction, images []source.ImageRef, at time.Time) (source.ImageRef, bool) {
	if !v.hasTarget || !v.IsOpen(at) {
		return source.ImageRef{}, false
	}
	next := v.index
	switch dir {
	case Prev:
		next--
	case Next:
		next++
	}
	if next < 0 || next >= len(images) {
		return source.ImageRef{}, false
	}
	ref := images[next]
	v.index = next
	v.target = ref.ID
	v.failed = false
	return ref, true
}

// Failed reports whether the current target could not be decoded.
func (v *Viewer) Failed() bool {
	return v.failed
}

// Target returns the ID the viewer is waiting for or showing.
func (v *Viewer) Target() (source.ID, bool) {
	return v.target, v.hasTarget
}

// Index returns the list position of the target.
func (v *Viewer) Index() (int, bool) {
	return v.index, v.hasTarget
}

// Image returns the displayed handle, or nil while the target is loading.
func (v *Viewer) Image() Handle {
	return v.image
}

// Showing reports whether the displayed image belongs to the current target.
func (v *Viewer) Showing() bool {
	return v.image != nil && v.hasTarget && v.imageID == v.target
}

func (v *Viewer) IsOpen(now time.Time) bool {
	return v.BackgroundAlpha(now) > 0
}

func (v *Viewer) IsAnimating(now time.Time) bool {
	return v.background.IsAnimating(now) || v.imageFade.IsAnimating(now)
}

// BackgroundAlpha is the opacity of the dimmed backdrop, in [0,0.8].
func (v *Viewer) BackgroundAlpha(now time.Time) float32 {
	return v.background.Interpolate(0.0, 0.8, now)
}

// ImageAlpha is the opacity of the displayed image, in [0,1].
func (v *Viewer) ImageAlpha(now time.Time) float32 {
	return v.imageFade.Interpolate(0.0, 1.0, now)
}

// ImageScale shrinks from 1.5 to 1.0 as the image fades in.
func (v *Viewer) ImageScale(now time.Time) float32 {
	return v.imageFade.Interpolate(1.5, 1.0, now)
}

func (v *Viewer) dropImage() {
	if v.image != nil {
		release(v.image)
		v.image = nil
	}
}
