package config

// MouseSettings contains mouse-specific configuration
type MouseSettings struct {
	WheelSensitivity float64 `json:"wheel_sensitivity"`
	DoubleClickTime  int     `json:"double_click_time"` // milliseconds
	EnableMouse      bool    `json:"enable_mouse"`
	WheelInverted    bool    `json:"wheel_inverted"`
	ScrollSpeed      float64 `json:"scroll_speed"` // pixels per wheel step in the gallery
}

// GetDefaultMouseSettings returns the default mouse settings
func GetDefaultMouseSettings() MouseSettings {
	return MouseSettings{
		WheelSensitivity: 1.0,
		DoubleClickTime:  300,
		EnableMouse:      true,
		WheelInverted:    false,
		ScrollSpeed:      60,
	}
}

func validateMouseSettings(s *MouseSettings) {
	if s.WheelSensitivity <= 0 {
		s.WheelSensitivity = 1.0
	}
	if s.DoubleClickTime < 50 || s.DoubleClickTime > 2000 {
		s.DoubleClickTime = 300
	}
	if s.ScrollSpeed <= 0 {
		s.ScrollSpeed = 60
	}
}

// validateMouseString validates a mouse binding like "Shift+LeftClick" or "WheelUp"
func validateMouseString(mouseStr string) error {
	parts, err := splitModifiers(mouseStr)
	if err != nil {
		return err
	}
	name := parts[len(parts)-1]
	switch name {
	case "LeftClick", "RightClick", "MiddleClick", "Back", "Forward",
		"DoubleLeftClick", "DoubleRightClick", "DoubleMiddleClick",
		"WheelUp", "WheelDown", "WheelLeft", "WheelRight":
		return nil
	}
	return errUnknownInput("mouse action", name)
}
