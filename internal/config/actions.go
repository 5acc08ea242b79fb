package config

// ActionDefinition defines an action with its default keybindings, mouse bindings, and description
type ActionDefinition struct {
	Name         string
	Keys         []string
	MouseActions []string
	Description  string
}

// actionDefinitions lists every bindable action in help order
var actionDefinitions = []ActionDefinition{
	{"exit", []string{"KeyQ"}, []string{}, "Quit application"},
	{"help", []string{"Shift+Slash"}, []string{"Alt+RightClick"}, "Show/hide help"},

	// Viewer actions
	{"next", []string{"ArrowRight", "Space", "KeyN"}, []string{"WheelDown"}, "Next image"},
	{"previous", []string{"ArrowLeft", "Shift+Space", "KeyP"}, []string{"WheelUp"}, "Previous image"},
	{"close", []string{"Escape", "Backspace"}, []string{"LeftClick", "RightClick"}, "Close the viewer"},
	{"copy_path", []string{"Ctrl+KeyC"}, []string{}, "Copy image location to clipboard"},

	// Gallery actions
	{"scroll_down", []string{"ArrowDown", "KeyJ"}, []string{}, "Scroll down one row"},
	{"scroll_up", []string{"ArrowUp", "KeyK"}, []string{}, "Scroll up one row"},
	{"page_down", []string{"PageDown"}, []string{}, "Scroll down one page"},
	{"page_up", []string{"PageUp"}, []string{}, "Scroll up one page"},
	{"jump_first", []string{"Home", "Shift+Comma"}, []string{}, "Jump to first image"},
	{"jump_last", []string{"End", "Shift+Period"}, []string{}, "Jump to last image"},
	{"cycle_sort", []string{"Shift+KeyS"}, []string{"Alt+MiddleClick"}, "Cycle sort method (Natural/Simple/Entry)"},
	{"reload", []string{"KeyR"}, []string{}, "Rescan the directory"},
	{"open_directory", []string{"KeyO"}, []string{"MiddleClick"}, "Open another directory"},
	{"fullscreen", []string{"Enter", "KeyF"}, []string{}, "Toggle fullscreen"},
}

// ActionNames returns every action name in help order.
func ActionNames() []string {
	names := make([]string, 0, len(actionDefinitions))
	for _, action := range actionDefinitions {
		names = append(names, action.Name)
	}
	return names
}

// GetActionDescriptions returns a map of action names to their descriptions
func GetActionDescriptions() map[string]string {
	descriptions := make(map[string]string)
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns a map of action names to their default keybindings
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = append([]string(nil), action.Keys...)
	}
	return keybindings
}

// GetDefaultMousebindings returns a map of action names to their default mouse bindings
func GetDefaultMousebindings() map[string][]string {
	mousebindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		mousebindings[action.Name] = append([]string(nil), action.MouseActions...)
	}
	return mousebindings
}
