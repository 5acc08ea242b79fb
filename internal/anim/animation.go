// Package anim provides time-driven two-state animations.
//
// An Animation never reads the wall clock. Every transition is stamped with
// the instant supplied by the caller and every query is answered for the
// "now" supplied by the caller, so any number of animations can be sampled
// with one shared frame timestamp.
package anim

import "time"

// Quick is the duration used by all tracks of the gallery.
const Quick = 200 * time.Millisecond

// Animation is a boolean target tweened over time.
type Animation struct {
	target   bool
	easing   Easing
	duration time.Duration

	// set on the first transition
	started bool
	start   time.Time
	// linear position (0 = false, 1 = true) reached when the last
	// transition was recorded
	origin float32
}

// New creates an animation resting at initial.
func New(initial bool) Animation {
	return Animation{
		target:   initial,
		easing:   Linear,
		duration: Quick,
	}
}

// Quick sets the duration to Quick.
func (a Animation) Quick() Animation {
	return a.Duration(Quick)
}

// Duration sets the transition duration.
func (a Animation) Duration(d time.Duration) Animation {
	if d < 0 {
		d = 0
	}
	a.duration = d
	return a
}

// Easing sets the easing curve.
func (a Animation) Easing(e Easing) Animation {
	if e == nil {
		e = Linear
	}
	a.easing = e
	return a
}

// Go returns a copy transitioning toward target at the given instant.
func (a Animation) Go(target bool, at time.Time) Animation {
	a.GoMut(target, at)
	return a
}

// GoMut transitions toward target, recording at as the transition instant.
// It does nothing if target equals the current target.
func (a *Animation) GoMut(target bool, at time.Time) {
	if target == a.target {
		return
	}
	a.origin = a.position(at)
	a.target = target
	a.start = at
	a.started = true
}

// Value returns the current target.
func (a *Animation) Value() bool {
	return a.target
}

// IsAnimating reports whether a transition is still in progress at now.
// A query earlier than the transition instant counts as pending.
func (a *Animation) IsAnimating(now time.Time) bool {
	if !a.started || a.duration <= 0 {
		return false
	}
	return now.Before(a.start.Add(a.duration))
}

// Interpolate maps the animation state at now onto [from, to], where from
// corresponds to false and to corresponds to true.
func (a *Animation) Interpolate(from, to float32, now time.Time) float32 {
	return from + (to-from)*a.position(now)
}

func (a *Animation) position(now time.Time) float32 {
	dest := float32(0)
	if a.target {
		dest = 1
	}
	if !a.started || a.duration <= 0 {
		return dest
	}

	progress := float32(now.Sub(a.start)) / float32(a.duration)
	switch {
	case progress <= 0:
		return a.origin
	case progress >= 1:
		return dest
	}
	return a.origin + (dest-a.origin)*a.easing(progress)
}
