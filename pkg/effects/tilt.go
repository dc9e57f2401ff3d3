package effects

// Rect is an axis-aligned box in pixel-like units.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Transform is a card's hover transform: a lift and two rotations in
// degrees.
type Transform struct {
	LiftY   float64
	RotateX float64
	RotateY float64
}

// Rest is the transform of a card the pointer is not over.
var Rest = Transform{}

// Tilt computes the hover transform for a pointer at (x, y) over r. The
// card leans away from the pointer by 1 degree per 20 units from centre.
func Tilt(r Rect, x, y float64) Transform {
	lx := x - r.X
	ly := y - r.Y
	cx := r.W / 2
	cy := r.H / 2
	return Transform{
		LiftY:   -8,
		RotateX: (ly - cy) / 20,
		RotateY: (cx - lx) / 20,
	}
}

// Lifted reports whether the card is hovered.
func (t Transform) Lifted() bool {
	return t != Rest
}

// Edges picks the border edges that face the pointer and should be lit.
// RotateX > 0 means the pointer is below centre; RotateY > 0 means it is
// left of centre.
type Edges struct {
	Top, Right, Bottom, Left bool
}

// LitEdges maps the transform onto border highlights for a terminal card.
func (t Transform) LitEdges() Edges {
	if !t.Lifted() {
		return Edges{}
	}
	return Edges{
		Top:    t.RotateX < 0,
		Bottom: t.RotateX > 0,
		Left:   t.RotateY > 0,
		Right:  t.RotateY < 0,
	}
}
