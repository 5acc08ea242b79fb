package main

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"k8s.io/klog/v2"
)

// modifiers is the set of modifier keys a binding requires. A binding only
// fires when exactly these are held.
type modifiers struct {
	Shift, Ctrl, Alt bool
}

var noModifiers modifiers

// splitBinding separates "Ctrl+Shift+KeyA" into its modifiers and final
// input name.
func splitBinding(s string) (modifiers, string, bool) {
	parts := strings.Split(s, "+")
	var m modifiers
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(p) {
		case "shift":
			m.Shift = true
		case "ctrl":
			m.Ctrl = true
		case "alt":
			m.Alt = true
		default:
			return modifiers{}, "", false
		}
	}
	return m, parts[len(parts)-1], true
}

func (m modifiers) held() bool {
	return m.Shift == ebiten.IsKeyPressed(ebiten.KeyShift) &&
		m.Ctrl == ebiten.IsKeyPressed(ebiten.KeyControl) &&
		m.Alt == ebiten.IsKeyPressed(ebiten.KeyAlt)
}

// KeyCombination is a parsed key binding.
type KeyCombination struct {
	Key ebiten.Key
	modifiers
}

func parseKeyString(keyStr string) (KeyCombination, bool) {
	mods, name, ok := splitBinding(keyStr)
	if !ok {
		return KeyCombination{}, false
	}
	key, ok := keyMapping[name]
	if !ok {
		return KeyCombination{}, false
	}
	return KeyCombination{Key: key, modifiers: mods}, true
}

func (c KeyCombination) pressed() bool {
	return inpututil.IsKeyJustPressed(c.Key) && c.held()
}

// KeybindingManager resolves actions to the keys bound to them. Bindings are
// parsed once; invalid ones are logged and skipped.
type KeybindingManager struct {
	bindings map[string][]string
	parsed   map[string][]KeyCombination
}

func NewKeybindingManager(bindings map[string][]string) *KeybindingManager {
	parsed := make(map[string][]KeyCombination, len(bindings))
	for action, keys := range bindings {
		for _, k := range keys {
			c, ok := parseKeyString(k)
			if !ok {
				klog.Warningf("ignoring key binding %q for %s", k, action)
				continue
			}
			parsed[action] = append(parsed[action], c)
		}
	}
	return &KeybindingManager{bindings: bindings, parsed: parsed}
}

// keyMapping maps configuration key names to Ebiten keys
var keyMapping = map[string]ebiten.Key{
	// Letters
	"KeyA": ebiten.KeyA, "KeyB": ebiten.KeyB, "KeyC": ebiten.KeyC, "KeyD": ebiten.KeyD,
	"KeyE": ebiten.KeyE, "KeyF": ebiten.KeyF, "KeyG": ebiten.KeyG, "KeyH": ebiten.KeyH,
	"KeyI": ebiten.KeyI, "KeyJ": ebiten.KeyJ, "KeyK": ebiten.KeyK, "KeyL": ebiten.KeyL,
	"KeyM": ebiten.KeyM, "KeyN": ebiten.KeyN, "KeyO": ebiten.KeyO, "KeyP": ebiten.KeyP,
	"KeyQ": ebiten.KeyQ, "KeyR": ebiten.KeyR, "KeyS": ebiten.KeyS, "KeyT": ebiten.KeyT,
	"KeyU": ebiten.KeyU, "KeyV": ebiten.KeyV, "KeyW": ebiten.KeyW, "KeyX": ebiten.KeyX,
	"KeyY": ebiten.KeyY, "KeyZ": ebiten.KeyZ,

	// Numbers
	"Key0": ebiten.Key0, "Key1": ebiten.Key1, "Key2": ebiten.Key2, "Key3": ebiten.Key3,
	"Key4": ebiten.Key4, "Key5": ebiten.Key5, "Key6": ebiten.Key6, "Key7": ebiten.Key7,
	"Key8": ebiten.Key8, "Key9": ebiten.Key9,

	// Special keys
	"Space":      ebiten.KeySpace,
	"Backspace":  ebiten.KeyBackspace,
	"Enter":      ebiten.KeyEnter,
	"Escape":     ebiten.KeyEscape,
	"Tab":        ebiten.KeyTab,
	"Home":       ebiten.KeyHome,
	"End":        ebiten.KeyEnd,
	"PageUp":     ebiten.KeyPageUp,
	"PageDown":   ebiten.KeyPageDown,
	"ArrowUp":    ebiten.KeyArrowUp,
	"ArrowDown":  ebiten.KeyArrowDown,
	"ArrowLeft":  ebiten.KeyArrowLeft,
	"ArrowRight": ebiten.KeyArrowRight,

	// Punctuation
	"Comma":     ebiten.KeyComma,
	"Period":    ebiten.KeyPeriod,
	"Slash":     ebiten.KeySlash,
	"Semicolon": ebiten.KeySemicolon,
	"Quote":     ebiten.KeyQuote,
	"Minus":     ebiten.KeyMinus,
	"Equal":     ebiten.KeyEqual,

	// Numpad
	"Numpad0":     ebiten.KeyNumpad0,
	"Numpad1":     ebiten.KeyNumpad1,
	"Numpad2":     ebiten.KeyNumpad2,
	"Numpad3":     ebiten.KeyNumpad3,
	"Numpad4":     ebiten.KeyNumpad4,
	"Numpad5":     ebiten.KeyNumpad5,
	"Numpad6":     ebiten.KeyNumpad6,
	"Numpad7":     ebiten.KeyNumpad7,
	"Numpad8":     ebiten.KeyNumpad8,
	"Numpad9":     ebiten.KeyNumpad9,
	"NumpadEnter": ebiten.KeyNumpadEnter,
}

// Triggered reports whether any key bound to action was pressed this frame.
func (km *KeybindingManager) Triggered(action string) bool {
	for _, c := range km.parsed[action] {
		if c.pressed() {
			return true
		}
	}
	return false
}

// ExecuteAction runs action if one of its keys was pressed this frame.
func (km *KeybindingManager) ExecuteAction(action string, inputActions InputActions, inputState InputState) bool {
	if !km.Triggered(action) {
		return false
	}
	return globalActionExecutor.ExecuteAction(action, inputActions, inputState)
}

// GetKeybindings returns the bindings as configured, for the help overlay.
func (km *KeybindingManager) GetKeybindings() map[string][]string {
	return km.bindings
}
