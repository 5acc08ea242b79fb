// Package config loads the gallery's JSON configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gallery/internal/anim"
	"gallery/internal/source"
	"k8s.io/klog/v2"
)

// Window size constants
const (
	DefaultWidth  = 1280
	DefaultHeight = 800
	MinWidth      = 400
	MinHeight     = 300
)

// LoadResult contains the result of loading configuration
type LoadResult struct {
	Config   Config
	HasError bool
	Warnings []string
	Status   string // "OK", "Default", "Warning", "Error"
}

type Config struct {
	WindowWidth   int                 `json:"window_width"`
	WindowHeight  int                 `json:"window_height"`
	Fullscreen    bool                `json:"fullscreen"`
	HelpFontSize  float64             `json:"help_font_size"`
	SortMethod    int                 `json:"sort_method"`
	CacheSize     int                 `json:"cache_size"`
	DecodeWorkers int                 `json:"decode_workers"`
	Resample      string              `json:"resample"`
	AnimationMs   int                 `json:"animation_ms"`
	Easing        string              `json:"easing"`
	Watch         bool                `json:"watch"`
	Keybindings   map[string][]string `json:"keybindings"`
	Mousebindings map[string][]string `json:"mousebindings"`
	MouseSettings MouseSettings       `json:"mouse_settings"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		WindowWidth:   DefaultWidth,
		WindowHeight:  DefaultHeight,
		HelpFontSize:  24.0,
		SortMethod:    source.SortNatural,
		CacheSize:     16,
		DecodeWorkers: 0, // GOMAXPROCS
		Resample:      source.CatmullRom.Name(),
		AnimationMs:   int(anim.Quick.Milliseconds()),
		Easing:        "ease-in-out",
		Keybindings:   GetDefaultKeybindings(),
		Mousebindings: GetDefaultMousebindings(),
		MouseSettings: GetDefaultMouseSettings(),
	}
}

// Path returns the location of the configuration file.
func Path() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "gallery.json"
	}
	return filepath.Join(homeDir, ".gallery.json")
}

func Load() LoadResult {
	return LoadFromPath(Path())
}

func LoadFromPath(configPath string) LoadResult {
	config := Default()

	result := LoadResult{
		Config:   config,
		Warnings: []string{},
		Status:   "OK",
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config file not found is not an error - use defaults
		result.Status = "Default"
		return result
	}

	if err := json.Unmarshal(data, &config); err != nil {
		klog.Warningf("Invalid config file %s, using defaults: %v", configPath, err)
		result.HasError = true
		result.Status = "Error"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid config file: %v", err))
		return result
	}

	warn := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		klog.Warning(msg)
		result.Warnings = append(result.Warnings, msg)
		result.Status = "Warning"
	}

	if config.WindowWidth < MinWidth {
		config.WindowWidth = DefaultWidth
	}
	if config.WindowHeight < MinHeight {
		config.WindowHeight = DefaultHeight
	}

	// minimum 12px for readability
	if config.HelpFontSize <= 12.0 {
		config.HelpFontSize = 24.0
	}

	if config.SortMethod < source.SortNatural || config.SortMethod > source.SortEntryOrder {
		config.SortMethod = source.SortNatural
	}

	// 0 disables the cache, maximum 256
	if config.CacheSize < 0 {
		config.CacheSize = 16
	} else if config.CacheSize > 256 {
		config.CacheSize = 256
	}

	// 0 means GOMAXPROCS, maximum 64
	if config.DecodeWorkers < 0 {
		config.DecodeWorkers = 0
	} else if config.DecodeWorkers > 64 {
		config.DecodeWorkers = 64
	}

	if _, ok := source.ResamplerByName(config.Resample); !ok {
		warn("Unknown resample filter %q, using %s", config.Resample, source.CatmullRom.Name())
		config.Resample = source.CatmullRom.Name()
	}

	// 0 disables animations, maximum 2s
	if config.AnimationMs < 0 {
		config.AnimationMs = int(anim.Quick.Milliseconds())
	} else if config.AnimationMs > 2000 {
		config.AnimationMs = 2000
	}

	switch config.Easing {
	case "linear", "ease-in-out", "smoothstep", "ease-out-cubic":
	default:
		warn("Unknown easing %q, using ease-in-out", config.Easing)
		config.Easing = "ease-in-out"
	}

	validateMouseSettings(&config.MouseSettings)

	config.Keybindings = mergeBindings(config.Keybindings, GetDefaultKeybindings())
	if err := ValidateKeybindings(config.Keybindings); err != nil {
		warn("Invalid keybindings detected, using defaults: %v", err)
		config.Keybindings = GetDefaultKeybindings()
	}

	config.Mousebindings = mergeBindings(config.Mousebindings, GetDefaultMousebindings())
	if err := ValidateMousebindings(config.Mousebindings); err != nil {
		warn("Invalid mouse bindings detected, using defaults: %v", err)
		config.Mousebindings = GetDefaultMousebindings()
	}

	result.Config = config
	return result
}

// mergeBindings fills in defaults for actions missing from bindings.
func mergeBindings(bindings, defaults map[string][]string) map[string][]string {
	if bindings == nil {
		return defaults
	}
	for action, keys := range defaults {
		if _, exists := bindings[action]; !exists {
			bindings[action] = keys
		}
	}
	return bindings
}

// ValidateKeybindings checks key formats and detects conflicts
func ValidateKeybindings(keybindings map[string][]string) error {
	return validateBindings(keybindings, validateKeyString)
}

// ValidateMousebindings checks mouse binding formats and detects conflicts
func ValidateMousebindings(mousebindings map[string][]string) error {
	return validateBindings(mousebindings, validateMouseString)
}

func validateBindings(bindings map[string][]string, validate func(string) error) error {
	known := GetActionDescriptions()
	inputToAction := make(map[string]string)

	for action, inputs := range bindings {
		if _, ok := known[action]; !ok {
			return fmt.Errorf("unknown action '%s'", action)
		}
		for _, input := range inputs {
			if err := validate(input); err != nil {
				return fmt.Errorf("invalid binding '%s' for action '%s': %w", input, action, err)
			}
			if existing, exists := inputToAction[input]; exists && existing != action {
				return fmt.Errorf("conflict: '%s' is bound to both '%s' and '%s'", input, existing, action)
			}
			inputToAction[input] = action
		}
	}

	return nil
}

// validateKeyString validates a single key string format
func validateKeyString(keyStr string) error {
	parts, err := splitModifiers(keyStr)
	if err != nil {
		return err
	}
	keyName := parts[len(parts)-1]
	if !validKeyNames[keyName] {
		return errUnknownInput("key", keyName)
	}
	return nil
}

var errEmptyBinding = errors.New("empty binding")

// splitModifiers splits "Shift+Ctrl+KeyA" and checks every modifier.
func splitModifiers(s string) ([]string, error) {
	if s == "" {
		return nil, errEmptyBinding
	}
	parts := strings.Split(s, "+")
	for _, modifier := range parts[:len(parts)-1] {
		switch strings.ToLower(modifier) {
		case "shift", "ctrl", "alt":
		default:
			return nil, fmt.Errorf("unknown modifier: %s", modifier)
		}
	}
	return parts, nil
}

func errUnknownInput(kind, name string) error {
	return fmt.Errorf("unknown %s: %s", kind, name)
}

// KeyNames returns the set of key names accepted in bindings.
func KeyNames() []string {
	names := make([]string, 0, len(validKeyNames))
	for name := range validKeyNames {
		names = append(names, name)
	}
	return names
}

var validKeyNames = map[string]bool{
	// Letters
	"KeyA": true, "KeyB": true, "KeyC": true, "KeyD": true,
	"KeyE": true, "KeyF": true, "KeyG": true, "KeyH": true,
	"KeyI": true, "KeyJ": true, "KeyK": true, "KeyL": true,
	"KeyM": true, "KeyN": true, "KeyO": true, "KeyP": true,
	"KeyQ": true, "KeyR": true, "KeyS": true, "KeyT": true,
	"KeyU": true, "KeyV": true, "KeyW": true, "KeyX": true,
	"KeyY": true, "KeyZ": true,

	// Numbers
	"Key0": true, "Key1": true, "Key2": true, "Key3": true,
	"Key4": true, "Key5": true, "Key6": true, "Key7": true,
	"Key8": true, "Key9": true,

	// Special keys
	"Space": true, "Backspace": true, "Enter": true, "Escape": true,
	"Tab": true, "Home": true, "End": true, "PageUp": true, "PageDown": true,
	"ArrowUp": true, "ArrowDown": true, "ArrowLeft": true, "ArrowRight": true,

	// Punctuation
	"Comma": true, "Period": true, "Slash": true, "Semicolon": true,
	"Quote": true, "Minus": true, "Equal": true,

	// Numpad
	"Numpad0": true, "Numpad1": true, "Numpad2": true, "Numpad3": true,
	"Numpad4": true, "Numpad5": true, "Numpad6": true, "Numpad7": true,
	"Numpad8": true, "Numpad9": true, "NumpadEnter": true,
}

// SortStrategy returns the configured sort strategy.
func (c Config) SortStrategy() source.SortStrategy {
	return source.GetSortStrategy(c.SortMethod)
}

// Resampler returns the configured thumbnail filter.
func (c Config) Resampler() source.Resampler {
	r, ok := source.ResamplerByName(c.Resample)
	if !ok {
		return source.CatmullRom
	}
	return r
}

// Animation returns the configured animation duration and easing.
func (c Config) Animation() (time.Duration, anim.Easing) {
	return time.Duration(c.AnimationMs) * time.Millisecond, anim.EasingByName(c.Easing)
}

func Save(config Config) error {
	return SaveToPath(config, Path())
}

func SaveToPath(config Config, configPath string) error {
	if config.WindowWidth < MinWidth || config.WindowHeight < MinHeight {
		return fmt.Errorf("invalid window size %dx%d", config.WindowWidth, config.WindowHeight)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to save config to %s: %w", configPath, err)
	}
	return nil
}
