package effects

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Scroller animates the scroll offset toward a target with a critically
// damped spring, the terminal analogue of scroll-behavior: smooth.
type Scroller struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	active bool
}

// NewScroller creates a scroller stepped at fps frames per second.
func NewScroller(fps int) Scroller {
	if fps <= 0 {
		fps = 30
	}
	return Scroller{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0)}
}

// AnchorOffset returns the scroll offset that puts a section just below a
// navbar of navHeight lines, clamped to [0, maxScroll].
func AnchorOffset(sectionTop, navHeight, maxScroll int) int {
	off := sectionTop - navHeight
	if off > maxScroll {
		off = maxScroll
	}
	if off < 0 {
		off = 0
	}
	return off
}

// ScrollTo starts an animation from the current offset to target.
func (s *Scroller) ScrollTo(from, target float64) {
	if !s.active {
		s.pos = from
		s.vel = 0
	}
	s.target = target
	s.active = from != target || s.vel != 0
}

// Active reports whether an animation is in progress.
func (s *Scroller) Active() bool {
	return s.active
}

// Target returns the current animation target.
func (s *Scroller) Target() float64 {
	return s.target
}

// Stop abandons the animation, for example when the user scrolls manually.
func (s *Scroller) Stop() {
	s.active = false
	s.vel = 0
}

// Step advances one frame and returns the new offset rounded to a whole
// line, and whether the animation has settled on the target.
func (s *Scroller) Step() (int, bool) {
	if !s.active {
		return int(math.Round(s.target)), true
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 0.5 && math.Abs(s.vel) < 0.5 {
		s.pos = s.target
		s.vel = 0
		s.active = false
		return int(math.Round(s.target)), true
	}
	return int(math.Round(s.pos)), false
}
