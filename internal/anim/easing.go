package anim

// Easing maps linear progress in [0,1] to eased progress in [0,1].
type Easing func(t float32) float32

// Common easing curves
var (
	// Linear - constant speed
	Linear Easing = func(t float32) float32 { return t }

	// EaseInOut - quadratic ease-in-out
	EaseInOut Easing = func(t float32) float32 {
		if t < 0.5 {
			return 2.0 * t * t
		}
		return -1.0 + (4.0-2.0*t)*t
	}

	// Smoothstep - S-curve, zero slope at both ends
	Smoothstep Easing = func(t float32) float32 {
		return t * t * (3.0 - 2.0*t)
	}

	// EaseOutCubic - fast start, decelerating
	EaseOutCubic Easing = func(t float32) float32 {
		t1 := t - 1.0
		return t1*t1*t1 + 1.0
	}
)

// EasingByName returns the easing curve for a config name, falling back to EaseInOut.
func EasingByName(name string) Easing {
	switch name {
	case "linear":
		return Linear
	case "smoothstep":
		return Smoothstep
	case "ease-out-cubic":
		return EaseOutCubic
	default:
		return EaseInOut
	}
}
