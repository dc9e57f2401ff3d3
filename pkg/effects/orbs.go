// Package effects implements the decorative motion of the page: hero
// orbs, card tilt, button ripples, the typewriter and smooth scrolling.
// Every effect is a pure function of its inputs and a timestamp, so the
// host decides when frames happen.
package effects

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Cell metrics used to map CSS-pixel sizes onto terminal cells.
const (
	CellWidthPx  = 8.0
	CellHeightPx = 16.0
)

// orbGain lifts the 15% gradient alpha so the glow survives cell
// quantisation.
const orbGain = 3.0

// Orb is one floating radial gradient in the hero background.
type Orb struct {
	Size   float64 // diameter in px, 200..500
	X, Y   float64 // centre as a percentage of the hero, 0..100
	Hue    float64 // 210 (blue) or 190 (cyan)
	Period time.Duration
	Delay  time.Duration
}

// OrbFrame is the animated transform of an orb at one instant.
type OrbFrame struct {
	DX, DY  float64 // px offset
	Scale   float64
	Opacity float64
}

type keyframe struct {
	at    float64
	frame OrbFrame
}

// floatKeyframes is the looping float animation.
var floatKeyframes = []keyframe{
	{0, OrbFrame{0, 0, 1, 0.3}},
	{0.25, OrbFrame{20, -20, 1.1, 0.5}},
	{0.5, OrbFrame{-20, 20, 0.9, 0.4}},
	{0.75, OrbFrame{20, 20, 1.05, 0.5}},
	{1, OrbFrame{0, 0, 1, 0.3}},
}

// NewOrbs generates n orbs from rng.
func NewOrbs(rng *rand.Rand, n int) []Orb {
	orbs := make([]Orb, 0, n)
	for i := 0; i < n; i++ {
		o := Orb{
			Size: rng.Float64()*300 + 200,
			X:    rng.Float64() * 100,
			Y:    rng.Float64() * 100,
			Hue:  190,
		}
		if rng.Float64() > 0.5 {
			o.Hue = 210
		}
		o.Period = time.Duration((8 + rng.Float64()*4) * float64(time.Second))
		o.Delay = time.Duration(rng.Float64() * 2 * float64(time.Second))
		orbs = append(orbs, o)
	}
	return orbs
}

// Color returns the orb's base colour, hsl(hue, 80%, 60%).
func (o Orb) Color() colorful.Color {
	return colorful.Hsl(o.Hue, 0.8, 0.6)
}

// Frame evaluates the float animation at elapsed time t. Before the delay
// has passed the orb rests on the first keyframe.
func (o Orb) Frame(t time.Duration) OrbFrame {
	if t < o.Delay || o.Period <= 0 {
		return floatKeyframes[0].frame
	}
	phase := float64((t-o.Delay)%o.Period) / float64(o.Period)

	for i := 1; i < len(floatKeyframes); i++ {
		a, b := floatKeyframes[i-1], floatKeyframes[i]
		if phase > b.at {
			continue
		}
		p := easeInOut((phase - a.at) / (b.at - a.at))
		return OrbFrame{
			DX:      lerp(a.frame.DX, b.frame.DX, p),
			DY:      lerp(a.frame.DY, b.frame.DY, p),
			Scale:   lerp(a.frame.Scale, b.frame.Scale, p),
			Opacity: lerp(a.frame.Opacity, b.frame.Opacity, p),
		}
	}
	return floatKeyframes[len(floatKeyframes)-1].frame
}

// RenderOrbs blends the orbs over base for a width x height cell area and
// returns one colour per cell, row-major.
func RenderOrbs(width, height int, base colorful.Color, orbs []Orb, t time.Duration) [][]colorful.Color {
	field := make([][]colorful.Color, height)
	for y := range field {
		row := make([]colorful.Color, width)
		for x := range row {
			row[x] = base
		}
		field[y] = row
	}
	if width <= 0 || height <= 0 {
		return field
	}

	for _, o := range orbs {
		f := o.Frame(t)
		col := o.Color()
		cx := o.X/100*float64(width) + f.DX/CellWidthPx
		cy := o.Y/100*float64(height) + f.DY/CellHeightPx
		rx := o.Size / 2 * f.Scale / CellWidthPx
		ry := o.Size / 2 * f.Scale / CellHeightPx

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				dx := (float64(x) + 0.5 - cx) / rx
				dy := (float64(y) + 0.5 - cy) / ry
				d := math.Hypot(dx, dy)
				if d >= 0.7 {
					continue
				}
				alpha := 0.15 * orbGain * f.Opacity * (1 - d/0.7)
				field[y][x] = field[y][x].BlendRgb(col, math.Min(alpha, 1)).Clamped()
			}
		}
	}
	return field
}

func lerp(a, b, p float64) float64 { return a + (b-a)*p }

// easeInOut approximates CSS ease-in-out with smoothstep.
func easeInOut(p float64) float64 {
	p = math.Max(0, math.Min(1, p))
	return p * p * (3 - 2*p)
}
