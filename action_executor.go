package main

// Actions that only apply while the viewer is open or closed
var (
	viewerActions = map[string]bool{
		"next": true, "previous": true, "close": true, "copy_path": true,
	}
	galleryActions = map[string]bool{
		"scroll_down": true, "scroll_up": true, "page_down": true, "page_up": true,
		"jump_first": true, "jump_last": true,
	}
)

// ActionExecutor provides centralized action execution logic shared by
// KeybindingManager and MousebindingManager
type ActionExecutor struct{}

// NewActionExecutor creates a new ActionExecutor instance
func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// Applies reports whether action is meaningful in the current mode.
func (ae *ActionExecutor) Applies(action string, inputState InputState) bool {
	if viewerActions[action] {
		return inputState.IsViewerOpen()
	}
	if galleryActions[action] {
		return !inputState.IsViewerOpen()
	}
	return true
}

// ExecuteAction executes the given action using the InputActions interface
func (ae *ActionExecutor) ExecuteAction(action string, inputActions InputActions, inputState InputState) bool {
	if !ae.Applies(action, inputState) {
		return false
	}

	switch action {
	case "exit":
		inputActions.Exit()
	case "help":
		inputActions.ToggleHelp()
	case "fullscreen":
		inputActions.ToggleFullscreen()
	case "next":
		inputActions.NavigateNext()
	case "previous":
		inputActions.NavigatePrevious()
	case "close":
		inputActions.CloseViewer()
	case "copy_path":
		inputActions.CopyPath()
	case "scroll_down":
		inputActions.ScrollBy(cardHeight + cardSpacing)
	case "scroll_up":
		inputActions.ScrollBy(-(cardHeight + cardSpacing))
	case "page_down":
		inputActions.ScrollPages(1)
	case "page_up":
		inputActions.ScrollPages(-1)
	case "jump_first":
		inputActions.JumpToFirst()
	case "jump_last":
		inputActions.JumpToLast()
	case "cycle_sort":
		inputActions.CycleSortMethod()
	case "reload":
		inputActions.Reload()
	case "open_directory":
		inputActions.OpenDirectory()
	default:
		return false
	}

	return true
}

// globalActionExecutor is the global instance of ActionExecutor used throughout the application
var globalActionExecutor = NewActionExecutor()
