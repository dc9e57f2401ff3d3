package effects

import (
	"math"
	"time"
)

// RippleDuration is the length of the ripple animation.
const RippleDuration = 600 * time.Millisecond

// Ripple is the expanding circle drawn where a button was clicked.
// Left and Top are relative to the button, like the span the page script
// appended.
type Ripple struct {
	Diameter float64
	Left     float64
	Top      float64
	Start    time.Time
}

// NewRipple places a ripple for a click at (x, y) on button r.
func NewRipple(r Rect, x, y float64, now time.Time) Ripple {
	d := math.Max(r.W, r.H)
	radius := d / 2
	return Ripple{
		Diameter: d,
		Left:     x - r.X - radius,
		Top:      y - r.Y - radius,
		Start:    now,
	}
}

// At returns the ripple's scale (0..4) and opacity (1..0) at now, and
// whether the animation has finished.
func (rp Ripple) At(now time.Time) (scale, opacity float64, done bool) {
	elapsed := now.Sub(rp.Start)
	if elapsed >= RippleDuration {
		return 4, 0, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	p := float64(elapsed) / float64(RippleDuration)
	e := 1 - (1-p)*(1-p) // ease-out
	return 4 * e, 1 - e, false
}

// Covers reports whether the ripple paints the point (x, y), given in the
// button's coordinates, at now.
func (rp Ripple) Covers(x, y float64, now time.Time) bool {
	scale, opacity, done := rp.At(now)
	if done || opacity < 0.15 {
		return false
	}
	radius := rp.Diameter / 2
	cx := rp.Left + radius
	cy := rp.Top + radius
	return math.Hypot(x-cx, y-cy) <= radius*scale
}

// Ripples holds at most one live ripple per button id.
type Ripples struct {
	live map[string]Ripple
}

// Start replaces any existing ripple on id.
func (rs *Ripples) Start(id string, rp Ripple) {
	if rs.live == nil {
		rs.live = make(map[string]Ripple)
	}
	rs.live[id] = rp
}

// Get returns the live ripple for id, dropping it once finished.
func (rs *Ripples) Get(id string, now time.Time) (Ripple, bool) {
	rp, ok := rs.live[id]
	if !ok {
		return Ripple{}, false
	}
	if _, _, done := rp.At(now); done {
		delete(rs.live, id)
		return Ripple{}, false
	}
	return rp, true
}

// Prune drops finished ripples and reports whether any remain.
func (rs *Ripples) Prune(now time.Time) bool {
	for id, rp := range rs.live {
		if _, _, done := rp.At(now); done {
			delete(rs.live, id)
		}
	}
	return len(rs.live) > 0
}
