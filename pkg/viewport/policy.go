package viewport

// Interval is a half-open span [Top, Bottom) in scroll coordinates.
type Interval struct {
	Top    float64
	Bottom float64
}

// Height returns Bottom - Top.
func (iv Interval) Height() float64 {
	return iv.Bottom - iv.Top
}

// Degenerate reports whether the interval has no extent.
func (iv Interval) Degenerate() bool {
	return iv.Bottom <= iv.Top
}

// Contains reports whether p lies in [Top, Bottom).
func (iv Interval) Contains(p float64) bool {
	return p >= iv.Top && p < iv.Bottom
}

// Overlap returns the length of the intersection of iv and o.
func (iv Interval) Overlap(o Interval) float64 {
	top := max(iv.Top, o.Top)
	bottom := min(iv.Bottom, o.Bottom)
	if bottom <= top {
		return 0
	}
	return bottom - top
}

// Snapshot is one immutable capture of the viewport used for a single
// evaluation pass.
type Snapshot struct {
	ScrollPosition float64
	ViewportSize   float64
}

// Center returns the scroll coordinate of the viewport's vertical midline.
func (s Snapshot) Center() float64 {
	return s.ScrollPosition + s.ViewportSize/2
}

// Policy decides how a region's engagement is computed. The three concrete
// policies are OneShotReveal, ActiveSection and ScrollDepth.
type Policy interface {
	isPolicy()
}

// OneShotReveal engages once the region's top has crossed into the band
// [scroll, scroll+viewport-MarginBottom) by at least Threshold of its
// height. The transition is irreversible and the region is retired after
// its callback fires.
type OneShotReveal struct {
	// Threshold is the fraction (0..1) of the region's height that must
	// overlap the band. Zero means any overlap.
	Threshold float64
	// MarginBottom shrinks the band from below so content reveals slightly
	// before it is fully in view.
	MarginBottom float64
}

func (OneShotReveal) isPolicy() {}

func (p OneShotReveal) engaged(iv Interval, s Snapshot) bool {
	band := Interval{Top: s.ScrollPosition, Bottom: s.ScrollPosition + s.ViewportSize - p.MarginBottom}
	overlap := iv.Overlap(band)
	if overlap <= 0 {
		return false
	}
	return overlap >= p.Threshold*iv.Height()
}

// ActiveSection is the toggle variant that tracks whichever region
// straddles the viewport's vertical centre. At most one ActiveSection
// region per controller is engaged at any time.
type ActiveSection struct {
	// BandHeight widens the centre line into a band of this height. Zero
	// tests the centre line itself against [Top, Bottom).
	BandHeight float64
}

func (ActiveSection) isPolicy() {}

func (p ActiveSection) engaged(iv Interval, s Snapshot) bool {
	c := s.Center()
	if p.BandHeight <= 0 {
		return iv.Contains(c)
	}
	band := Interval{Top: c - p.BandHeight/2, Bottom: c + p.BandHeight/2}
	return iv.Overlap(band) > 0
}

// ScrollDepth is the toggle variant that engages once the scroll position
// passes Depth. Region geometry is not consulted.
type ScrollDepth struct {
	Depth float64
}

func (ScrollDepth) isPolicy() {}

func (p ScrollDepth) engaged(s Snapshot) bool {
	return s.ScrollPosition > p.Depth
}
