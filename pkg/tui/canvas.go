// Package tui provides a small cell canvas for compositing layers that
// lipgloss cannot overlay, such as text drawn over the hero's orb field.
package tui

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/sourabhakk/folio/pkg/components"
)

// Cell is one terminal cell.
type Cell struct {
	Ch   rune
	FG   string // hex, "" = terminal default
	BG   string // hex, "" = terminal default
	Bold bool
}

// Canvas is a width x height grid of cells.
type Canvas struct {
	w, h  int
	cells [][]Cell
}

// NewCanvas creates a canvas filled with blank cells.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]Cell, height)
	for y := range cells {
		row := make([]Cell, width)
		for x := range row {
			row[x] = Cell{Ch: ' '}
		}
		cells[y] = row
	}
	return &Canvas{w: width, h: height, cells: cells}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	return c.w, c.h
}

// At returns the cell at (x, y), or a blank cell outside the canvas.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return Cell{Ch: ' '}
	}
	return c.cells[y][x]
}

// FillField sets each cell's background from a colour field. The field may
// be smaller than the canvas.
func (c *Canvas) FillField(field [][]colorful.Color) {
	for y := 0; y < c.h && y < len(field); y++ {
		for x := 0; x < c.w && x < len(field[y]); x++ {
			c.cells[y][x].BG = field[y][x].Hex()
		}
	}
}

// Text writes s starting at (x, y), clipping to the canvas. Backgrounds
// already on the canvas are kept.
func (c *Canvas) Text(x, y int, s string, fg string, bold bool) {
	if y < 0 || y >= c.h {
		return
	}
	for _, ch := range s {
		if x >= c.w {
			return
		}
		if x >= 0 {
			cell := &c.cells[y][x]
			cell.Ch = ch
			cell.FG = fg
			cell.Bold = bold
		}
		x++
	}
}

// TextCentered writes s centred horizontally on row y.
func (c *Canvas) TextCentered(y int, s string, fg string, bold bool) {
	n := len([]rune(s))
	c.Text((c.w-n)/2, y, s, fg, bold)
}

// Lines renders the canvas as one string per row. Runs of identical
// styling share a single escape sequence. With plain set, only the
// characters are emitted.
func (c *Canvas) Lines(plain bool) []string {
	lines := make([]string, c.h)
	for y, row := range c.cells {
		var b strings.Builder
		var prev *Cell
		for x := range row {
			cell := &row[x]
			if !plain && (prev == nil || !sameStyle(*prev, *cell)) {
				if prev != nil {
					b.WriteString(components.Reset())
				}
				if cell.Bold {
					b.WriteString("\x1b[1m")
				}
				b.WriteString(components.Color(cell.FG))
				b.WriteString(components.BgColor(cell.BG))
			}
			b.WriteRune(cell.Ch)
			prev = cell
		}
		if !plain && prev != nil {
			b.WriteString(components.Reset())
		}
		lines[y] = b.String()
	}
	return lines
}

func sameStyle(a, b Cell) bool {
	return a.FG == b.FG && a.BG == b.BG && a.Bold == b.Bold
}
