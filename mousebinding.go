package main

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"k8s.io/klog/v2"

	"gallery/internal/config"
)

type wheelDir int

const (
	wheelNone wheelDir = iota
	wheelUp
	wheelDown
	wheelLeft
	wheelRight
)

var wheelNames = map[string]wheelDir{
	"WheelUp":    wheelUp,
	"WheelDown":  wheelDown,
	"WheelLeft":  wheelLeft,
	"WheelRight": wheelRight,
}

var mouseMapping = map[string]ebiten.MouseButton{
	"LeftClick":   ebiten.MouseButtonLeft,
	"RightClick":  ebiten.MouseButtonRight,
	"MiddleClick": ebiten.MouseButtonMiddle,
	"Back":        ebiten.MouseButton3,
	"Forward":     ebiten.MouseButton4,
}

// MouseCombination is a parsed mouse binding: a button press, a double
// click, or a wheel direction.
type MouseCombination struct {
	Button ebiten.MouseButton
	Double bool
	Wheel  wheelDir
	modifiers
}

// parseMouseString accepts "LeftClick", "DoubleLeftClick", "WheelUp" and so
// on, optionally prefixed with modifiers.
func parseMouseString(mouseStr string) (MouseCombination, bool) {
	mods, name, ok := splitBinding(mouseStr)
	if !ok {
		return MouseCombination{}, false
	}
	c := MouseCombination{modifiers: mods}
	if dir, ok := wheelNames[name]; ok {
		c.Wheel = dir
		return c, true
	}
	if rest, ok := strings.CutPrefix(name, "Double"); ok {
		c.Double = true
		name = rest
	}
	button, ok := mouseMapping[name]
	if !ok {
		return MouseCombination{}, false
	}
	c.Button = button
	return c, true
}

// clickTracker pairs two presses of the same button into a double click.
type clickTracker struct {
	button ebiten.MouseButton
	at     time.Time
	armed  bool
}

// press records a press at now and reports whether it completes a double click.
func (t *clickTracker) press(button ebiten.MouseButton, now time.Time, window time.Duration) bool {
	if t.armed && t.button == button && now.Sub(t.at) <= window {
		t.armed = false
		return true
	}
	t.button, t.at, t.armed = button, now, true
	return false
}

// MousebindingManager resolves actions to mouse bindings and applies the
// configured mouse settings.
type MousebindingManager struct {
	bindings map[string][]string
	parsed   map[string][]MouseCombination
	settings config.MouseSettings
	clicks   clickTracker
}

func NewMousebindingManager(bindings map[string][]string, settings config.MouseSettings) *MousebindingManager {
	parsed := make(map[string][]MouseCombination, len(bindings))
	for action, inputs := range bindings {
		for _, s := range inputs {
			c, ok := parseMouseString(s)
			if !ok {
				klog.Warningf("ignoring mouse binding %q for %s", s, action)
				continue
			}
			parsed[action] = append(parsed[action], c)
		}
	}
	return &MousebindingManager{bindings: bindings, parsed: parsed, settings: settings}
}

// wheel returns this frame's wheel movement scaled by the sensitivity, with
// the vertical axis flipped when inverted.
func (mm *MousebindingManager) wheel() (float64, float64) {
	x, y := ebiten.Wheel()
	if mm.settings.WheelInverted {
		y = -y
	}
	return x * mm.settings.WheelSensitivity, y * mm.settings.WheelSensitivity
}

func (mm *MousebindingManager) triggered(c MouseCombination) bool {
	if !mm.settings.EnableMouse || !c.held() {
		return false
	}
	if c.Wheel != wheelNone {
		x, y := mm.wheel()
		switch c.Wheel {
		case wheelUp:
			return y > 0
		case wheelDown:
			return y < 0
		case wheelLeft:
			return x < 0
		default:
			return x > 0
		}
	}
	if !inpututil.IsMouseButtonJustPressed(c.Button) {
		return false
	}
	if c.Double {
		window := time.Duration(mm.settings.DoubleClickTime) * time.Millisecond
		return mm.clicks.press(c.Button, time.Now(), window)
	}
	return true
}

// Triggered reports whether any mouse binding of action fired this frame.
func (mm *MousebindingManager) Triggered(action string) bool {
	for _, c := range mm.parsed[action] {
		if mm.triggered(c) {
			return true
		}
	}
	return false
}

// ExecuteAction runs action if it applies in the current mode and one of its
// bindings fired. The mode is checked first so a double click is not
// consumed by an action that would be ignored.
func (mm *MousebindingManager) ExecuteAction(action string, inputActions InputActions, inputState InputState) bool {
	if !globalActionExecutor.Applies(action, inputState) || !mm.Triggered(action) {
		return false
	}
	return globalActionExecutor.ExecuteAction(action, inputActions, inputState)
}

func (mm *MousebindingManager) GetMousebindings() map[string][]string {
	return mm.bindings
}

func (mm *MousebindingManager) GetSettings() config.MouseSettings {
	return mm.settings
}
