package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gallery/internal/anim"
	"gallery/internal/source"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), ".gallery.json")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return configPath
}

func TestLoadConfigDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nonexistent.json")

	result := LoadFromPath(configPath)

	if result.Status != "Default" {
		t.Errorf("Expected status Default, got %s", result.Status)
	}
	if result.HasError {
		t.Error("Missing config file should not be an error")
	}
	if !reflect.DeepEqual(result.Config, Default()) {
		t.Errorf("Default config mismatch.\nExpected: %+v\nGot: %+v", Default(), result.Config)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name            string
		configJSON      string
		expectedWidth   int
		expectedHeight  int
		expectedSort    int
		expectedCache   int
		expectedWorkers int
		expectedAnimMs  int
		expectedStatus  string
	}{
		{
			name: "Valid config",
			configJSON: `{
				"window_width": 1000,
				"window_height": 800,
				"sort_method": 1,
				"cache_size": 32,
				"decode_workers": 4,
				"animation_ms": 300
			}`,
			expectedWidth:   1000,
			expectedHeight:  800,
			expectedSort:    source.SortSimple,
			expectedCache:   32,
			expectedWorkers: 4,
			expectedAnimMs:  300,
			expectedStatus:  "OK",
		},
		{
			name:            "Window too small",
			configJSON:      `{"window_width": 200, "window_height": 100}`,
			expectedWidth:   DefaultWidth,
			expectedHeight:  DefaultHeight,
			expectedSort:    source.SortNatural,
			expectedCache:   16,
			expectedWorkers: 0,
			expectedAnimMs:  200,
			expectedStatus:  "OK",
		},
		{
			name:            "Out of range values are clamped",
			configJSON:      `{"sort_method": 9, "cache_size": 1000, "decode_workers": -3, "animation_ms": 5000}`,
			expectedWidth:   DefaultWidth,
			expectedHeight:  DefaultHeight,
			expectedSort:    source.SortNatural,
			expectedCache:   256,
			expectedWorkers: 0,
			expectedAnimMs:  2000,
			expectedStatus:  "OK",
		},
		{
			name:            "Negative cache and animation fall back",
			configJSON:      `{"cache_size": -1, "animation_ms": -5}`,
			expectedWidth:   DefaultWidth,
			expectedHeight:  DefaultHeight,
			expectedSort:    source.SortNatural,
			expectedCache:   16,
			expectedWorkers: 0,
			expectedAnimMs:  200,
			expectedStatus:  "OK",
		},
		{
			name:            "Unknown resample filter warns",
			configJSON:      `{"resample": "nearest"}`,
			expectedWidth:   DefaultWidth,
			expectedHeight:  DefaultHeight,
			expectedSort:    source.SortNatural,
			expectedCache:   16,
			expectedWorkers: 0,
			expectedAnimMs:  200,
			expectedStatus:  "Warning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LoadFromPath(writeConfig(t, tt.configJSON))
			config := result.Config

			if config.WindowWidth != tt.expectedWidth {
				t.Errorf("Expected width %d, got %d", tt.expectedWidth, config.WindowWidth)
			}
			if config.WindowHeight != tt.expectedHeight {
				t.Errorf("Expected height %d, got %d", tt.expectedHeight, config.WindowHeight)
			}
			if config.SortMethod != tt.expectedSort {
				t.Errorf("Expected sort method %d, got %d", tt.expectedSort, config.SortMethod)
			}
			if config.CacheSize != tt.expectedCache {
				t.Errorf("Expected cache size %d, got %d", tt.expectedCache, config.CacheSize)
			}
			if config.DecodeWorkers != tt.expectedWorkers {
				t.Errorf("Expected decode workers %d, got %d", tt.expectedWorkers, config.DecodeWorkers)
			}
			if config.AnimationMs != tt.expectedAnimMs {
				t.Errorf("Expected animation %dms, got %dms", tt.expectedAnimMs, config.AnimationMs)
			}
			if result.Status != tt.expectedStatus {
				t.Errorf("Expected status %s, got %s (warnings %v)", tt.expectedStatus, result.Status, result.Warnings)
			}
		})
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	result := LoadFromPath(writeConfig(t, `{"window_width": `))

	if !result.HasError || result.Status != "Error" {
		t.Errorf("Expected Error status, got %s (HasError=%v)", result.Status, result.HasError)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("Expected 1 warning, got %v", result.Warnings)
	}
	if !reflect.DeepEqual(result.Config, Default()) {
		t.Error("Invalid config should fall back to defaults")
	}
}

func TestLoadConfigKeybindings(t *testing.T) {
	t.Run("Partial override keeps other defaults", func(t *testing.T) {
		result := LoadFromPath(writeConfig(t, `{"keybindings": {"next": ["KeyX"]}}`))
		kb := result.Config.Keybindings
		if !reflect.DeepEqual(kb["next"], []string{"KeyX"}) {
			t.Errorf("Expected next=[KeyX], got %v", kb["next"])
		}
		if !reflect.DeepEqual(kb["close"], GetDefaultKeybindings()["close"]) {
			t.Errorf("Expected default close binding, got %v", kb["close"])
		}
		if result.Status != "OK" {
			t.Errorf("Expected OK, got %s: %v", result.Status, result.Warnings)
		}
	})

	t.Run("Conflict resets to defaults", func(t *testing.T) {
		result := LoadFromPath(writeConfig(t, `{"keybindings": {"next": ["Escape"]}}`))
		if result.Status != "Warning" {
			t.Errorf("Expected Warning, got %s", result.Status)
		}
		if !reflect.DeepEqual(result.Config.Keybindings, GetDefaultKeybindings()) {
			t.Error("Conflicting keybindings should be replaced by defaults")
		}
	})

	t.Run("Invalid mouse binding resets to defaults", func(t *testing.T) {
		result := LoadFromPath(writeConfig(t, `{"mousebindings": {"next": ["TripleClick"]}}`))
		if result.Status != "Warning" {
			t.Errorf("Expected Warning, got %s", result.Status)
		}
		if !reflect.DeepEqual(result.Config.Mousebindings, GetDefaultMousebindings()) {
			t.Error("Invalid mouse bindings should be replaced by defaults")
		}
	})
}

func TestValidateKeybindings(t *testing.T) {
	tests := []struct {
		name        string
		keybindings map[string][]string
		wantErr     string
	}{
		{"Defaults", GetDefaultKeybindings(), ""},
		{"Modifiers", map[string][]string{"next": {"Shift+Ctrl+KeyN"}}, ""},
		{"Unknown key", map[string][]string{"next": {"KeyNope"}}, "unknown key"},
		{"Unknown modifier", map[string][]string{"next": {"Super+KeyN"}}, "unknown modifier"},
		{"Empty binding", map[string][]string{"next": {""}}, "empty binding"},
		{"Unknown action", map[string][]string{"rotate_left": {"KeyL"}}, "unknown action"},
		{"Conflict", map[string][]string{"next": {"KeyN"}, "previous": {"KeyN"}}, "conflict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKeybindings(tt.keybindings)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefaultBindingsAreValid(t *testing.T) {
	if err := ValidateMousebindings(GetDefaultMousebindings()); err != nil {
		t.Errorf("Default mouse bindings invalid: %v", err)
	}
	descriptions := GetActionDescriptions()
	for _, name := range ActionNames() {
		if descriptions[name] == "" {
			t.Errorf("Action %s has no description", name)
		}
	}
}

func TestConfigAccessors(t *testing.T) {
	config := Default()
	config.SortMethod = source.SortEntryOrder
	config.Resample = "lanczos"
	config.AnimationMs = 150
	config.Easing = "linear"

	if got := config.SortStrategy().ID(); got != source.SortEntryOrder {
		t.Errorf("SortStrategy ID = %d, want %d", got, source.SortEntryOrder)
	}
	if got := config.Resampler().Name(); got != "lanczos" {
		t.Errorf("Resampler = %s, want lanczos", got)
	}
	d, easing := config.Animation()
	if d != 150*time.Millisecond {
		t.Errorf("Animation duration = %v, want 150ms", d)
	}
	if easing(0.25) != anim.Linear(0.25) {
		t.Error("Expected linear easing")
	}
}

func TestSaveConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".gallery.json")
	config := Default()
	config.WindowWidth = 1024
	config.Watch = true

	if err := SaveToPath(config, configPath); err != nil {
		t.Fatalf("SaveToPath failed: %v", err)
	}
	result := LoadFromPath(configPath)
	if result.Status != "OK" {
		t.Errorf("Expected OK, got %s: %v", result.Status, result.Warnings)
	}
	if !reflect.DeepEqual(result.Config, config) {
		t.Errorf("Saved config mismatch.\nExpected: %+v\nGot: %+v", config, result.Config)
	}

	config.WindowWidth = 10
	if err := SaveToPath(config, configPath); err == nil {
		t.Error("Expected error saving an invalid window size")
	}
}
