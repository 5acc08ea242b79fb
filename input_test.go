package main

import (
	"reflect"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"gallery/internal/config"
)

func TestParseKeyString(t *testing.T) {
	tests := []struct {
		input string
		want  KeyCombination
		ok    bool
	}{
		{"ArrowRight", KeyCombination{Key: ebiten.KeyArrowRight}, true},
		{"Shift+KeyB", KeyCombination{Key: ebiten.KeyB, modifiers: modifiers{Shift: true}}, true},
		{"Ctrl+Alt+KeyC", KeyCombination{Key: ebiten.KeyC, modifiers: modifiers{Ctrl: true, Alt: true}}, true},
		{"shift+Space", KeyCombination{Key: ebiten.KeySpace, modifiers: modifiers{Shift: true}}, true},
		{"Hyper+KeyA", KeyCombination{}, false},
		{"KeyAA", KeyCombination{}, false},
		{"", KeyCombination{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseKeyString(tt.input)
			if ok != tt.ok {
				t.Fatalf("parseKeyString(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("parseKeyString(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMouseString(t *testing.T) {
	tests := []struct {
		input string
		want  MouseCombination
		ok    bool
	}{
		{"LeftClick", MouseCombination{Button: ebiten.MouseButtonLeft}, true},
		{"DoubleLeftClick", MouseCombination{Button: ebiten.MouseButtonLeft, Double: true}, true},
		{"WheelUp", MouseCombination{Wheel: wheelUp}, true},
		{"Ctrl+WheelDown", MouseCombination{Wheel: wheelDown, modifiers: modifiers{Ctrl: true}}, true},
		{"WheelSideways", MouseCombination{}, false},
		{"DoubleWheelUp", MouseCombination{}, false},
		{"Meta+LeftClick", MouseCombination{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseMouseString(tt.input)
			if ok != tt.ok {
				t.Fatalf("parseMouseString(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseMouseString(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClickTracker(t *testing.T) {
	var tracker clickTracker
	window := 300 * time.Millisecond
	start := time.Unix(0, 0)

	steps := []struct {
		button ebiten.MouseButton
		after  time.Duration
		want   bool
	}{
		{ebiten.MouseButtonLeft, 0, false},
		{ebiten.MouseButtonLeft, 100 * time.Millisecond, true},
		{ebiten.MouseButtonLeft, 200 * time.Millisecond, false},
		{ebiten.MouseButtonRight, 250 * time.Millisecond, false},
		{ebiten.MouseButtonLeft, 300 * time.Millisecond, false},
		{ebiten.MouseButtonLeft, time.Second, false},
		{ebiten.MouseButtonLeft, time.Second + 300*time.Millisecond, true},
	}
	for i, s := range steps {
		if got := tracker.press(s.button, start.Add(s.after), window); got != s.want {
			t.Errorf("press %d = %v, want %v", i, got, s.want)
		}
	}
}

func TestKeyNamesAreMapped(t *testing.T) {
	for _, name := range config.KeyNames() {
		if _, ok := keyMapping[name]; !ok {
			t.Errorf("config key %q has no ebiten key", name)
		}
	}
}

func TestDefaultBindingsParse(t *testing.T) {
	for action, keys := range config.GetDefaultKeybindings() {
		for _, k := range keys {
			if _, ok := parseKeyString(k); !ok {
				t.Errorf("default key %q for %s does not parse", k, action)
			}
		}
	}
	for action, buttons := range config.GetDefaultMousebindings() {
		for _, b := range buttons {
			if _, ok := parseMouseString(b); !ok {
				t.Errorf("default mouse binding %q for %s does not parse", b, action)
			}
		}
	}
}
