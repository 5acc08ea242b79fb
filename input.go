package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler handles all keyboard and mouse input processing
type InputHandler struct {
	inputActions        InputActions
	inputState          InputState
	keybindingManager   *KeybindingManager
	mousebindingManager *MousebindingManager
}

// NewInputHandler creates a new InputHandler
func NewInputHandler(inputActions InputActions, inputState InputState, keybindingManager *KeybindingManager, mousebindingManager *MousebindingManager) *InputHandler {
	return &InputHandler{
		inputActions:        inputActions,
		inputState:          inputState,
		keybindingManager:   keybindingManager,
		mousebindingManager: mousebindingManager,
	}
}

// HandleInput processes all input for the current frame
// Returns true if any input was processed, false otherwise
func (h *InputHandler) HandleInput() bool {
	inputProcessed := false

	if h.inputState.IsViewerOpen() {
		inputProcessed = h.handleViewerInput() || inputProcessed
	} else {
		inputProcessed = h.handleGalleryMouse() || inputProcessed
		inputProcessed = h.executeAll(galleryActionOrder) || inputProcessed
	}
	inputProcessed = h.executeAll(globalActionOrder) || inputProcessed

	return inputProcessed
}

var (
	viewerActionOrder  = []string{"close", "next", "previous", "copy_path"}
	galleryActionOrder = []string{"scroll_down", "scroll_up", "page_down", "page_up", "jump_first", "jump_last"}
	globalActionOrder  = []string{"exit", "help", "fullscreen", "cycle_sort", "reload", "open_directory"}
)

func (h *InputHandler) executeAll(actions []string) bool {
	inputProcessed := false
	for _, action := range actions {
		if h.execute(action) {
			inputProcessed = true
		}
	}
	return inputProcessed
}

func (h *InputHandler) execute(action string) bool {
	if h.keybindingManager.ExecuteAction(action, h.inputActions, h.inputState) {
		return true
	}
	return h.mousebindingManager.ExecuteAction(action, h.inputActions, h.inputState)
}

// handleViewerInput runs viewer actions; the first one wins so a close and a
// navigation never happen in the same frame
func (h *InputHandler) handleViewerInput() bool {
	for _, action := range viewerActionOrder {
		if h.execute(action) {
			return true
		}
	}
	return false
}

// handleGalleryMouse tracks hover, opens clicked cards and scrolls the grid
func (h *InputHandler) handleGalleryMouse() bool {
	settings := h.mousebindingManager.GetSettings()
	if !settings.EnableMouse {
		return false
	}
	inputProcessed := false

	layout := h.inputState.GetLayout()
	images := h.inputState.GetImages()
	x, y := ebiten.CursorPosition()
	index, onCard := layout.HitTest(x, y, len(images))
	if onCard {
		h.inputActions.HoverCard(images[index].ID, true)
	} else {
		h.inputActions.HoverCard(0, false)
	}

	if onCard && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && noModifiers.held() {
		id := images[index].ID
		if h.inputState.IsCardReady(id) {
			h.inputActions.OpenCard(id)
			inputProcessed = true
		}
	}

	if _, wheelY := h.mousebindingManager.wheel(); wheelY != 0 {
		h.inputActions.ScrollBy(-wheelY * settings.ScrollSpeed)
		inputProcessed = true
	}

	return inputProcessed
}
