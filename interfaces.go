package main

import (
	"time"

	"gallery/internal/config"
	"gallery/internal/gallery"
	"gallery/internal/source"
)

// overlayMessageDuration is how long an overlay message stays on screen
const overlayMessageDuration = 2 * time.Second

// RenderState provides read-only access to game state for the renderer
type RenderState interface {
	// Gallery data
	GetImages() []source.ImageRef
	IsListing() bool
	GetPreview(id source.ID) (gallery.Preview, bool)
	GetViewer() *gallery.Viewer
	GetFrameTime() time.Time
	GetLayout() gridLayout
	GetHovered() (source.ID, bool)

	// UI state
	IsShowingHelp() bool
	GetOverlayMessage() string
	GetOverlayMessageTime() time.Time

	// Display data
	GetDirectory() string
	GetSortName() string
	GetFontSize() float64
	GetConfigStatus() config.LoadResult
	GetKeybindings() map[string][]string
	GetMousebindings() map[string][]string
}

// frameState is what can change on screen without an input or pipeline
// event. Two equal values draw the same frame.
type frameState struct {
	overlay       string
	width, height int
}

// captureFrame records the frame state at now; an expired overlay message
// counts as no message.
func captureFrame(state RenderState, width, height int, now time.Time) frameState {
	f := frameState{width: width, height: height}
	if msg := state.GetOverlayMessage(); msg != "" && now.Sub(state.GetOverlayMessageTime()) < overlayMessageDuration {
		f.overlay = msg
	}
	return f
}

// redrawGate decides whether a frame has to be drawn. The screen is not
// cleared between frames, so once an animation stops one more frame is
// drawn to show its final state.
type redrawGate struct {
	last     frameState
	animated bool
	drawn    bool
}

func (r *redrawGate) needed(frame frameState, dirty, animating bool) bool {
	return !r.drawn || dirty || animating || r.animated || frame != r.last
}

func (r *redrawGate) done(frame frameState, animating bool) {
	r.last, r.animated, r.drawn = frame, animating, true
}

// InputActions provides action methods for the input handler
type InputActions interface {
	// Application control
	Exit()
	ToggleHelp()
	ToggleFullscreen()

	// Viewer
	NavigateNext()
	NavigatePrevious()
	CloseViewer()
	CopyPath()

	// Gallery
	OpenCard(id source.ID)
	HoverCard(id source.ID, ok bool)
	ScrollBy(pixels float64)
	ScrollPages(pages float64)
	JumpToFirst()
	JumpToLast()
	CycleSortMethod()
	Reload()
	OpenDirectory()

	// Messages
	ShowOverlayMessage(message string)
}

// InputState provides read-only access to input-related state
type InputState interface {
	IsViewerOpen() bool
	IsShowingHelp() bool
	GetLayout() gridLayout
	GetImages() []source.ImageRef
	IsCardReady(id source.ID) bool
}
