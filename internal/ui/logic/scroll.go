package logic

import "math"

// Rest describes how a surface animation ended in a frame
type Rest int

const (
	RestNone Rest = iota
	RestProgrammatic
	RestGesture
)

const (
	easing  = 0.35
	minStep = 1.0
	epsilon = 0.5
)

// ScrollSurface is a horizontally scrollable position with smooth scrolling.
// Offsets are in terminal columns.
type ScrollSurface struct {
	Offset float64
	Target float64
	Max    float64

	animating bool
	gesture   bool
}

// SetMax sets the largest reachable offset and clamps the current position
func (s *ScrollSurface) SetMax(max float64) {
	s.Max = math.Max(0, max)
	s.Offset = s.clamp(s.Offset)
	s.Target = s.clamp(s.Target)
}

// ScrollTo moves to target. Overscroll past either end is clamped.
func (s *ScrollSurface) ScrollTo(target float64, animated bool) {
	s.gesture = false
	s.Target = s.clamp(target)
	if !animated {
		s.Offset = s.Target
		s.animating = false
		return
	}
	s.animating = s.Offset != s.Target
}

// Fling starts a gesture-driven animation towards target. When it comes to
// rest, Step reports RestGesture.
func (s *ScrollSurface) Fling(target float64) {
	s.Target = s.clamp(target)
	s.gesture = true
	s.animating = true
}

// Drag moves the surface immediately by delta, cancelling any animation
func (s *ScrollSurface) Drag(delta float64) {
	s.Offset = s.clamp(s.Offset + delta)
	s.Target = s.Offset
	s.animating = false
	s.gesture = false
}

// Animating reports whether an animation is in flight
func (s *ScrollSurface) Animating() bool {
	return s.animating
}

// Idle reports whether the surface is at rest
func (s *ScrollSurface) Idle() bool {
	return !s.animating
}

// Step advances the animation by one frame
func (s *ScrollSurface) Step() Rest {
	if !s.animating {
		return RestNone
	}

	diff := s.Target - s.Offset
	if math.Abs(diff) <= epsilon {
		s.Offset = s.Target
		s.animating = false
		if s.gesture {
			s.gesture = false
			return RestGesture
		}
		return RestProgrammatic
	}

	step := diff * easing
	if math.Abs(step) < minStep {
		step = math.Copysign(math.Min(minStep, math.Abs(diff)), diff)
	}
	s.Offset += step
	return RestNone
}

func (s *ScrollSurface) clamp(v float64) float64 {
	return math.Min(math.Max(v, 0), s.Max)
}
