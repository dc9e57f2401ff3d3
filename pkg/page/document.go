// Package page lays a content.Site out as a vertically scrolling document
// of blocks and renders the visible window of it.
//
// Geometry is in terminal cells: Top and Height are lines from the top of
// the document, Left and Width are columns. Block heights never depend on
// animation state, so bounds computed for the viewport controller stay
// valid between frames.
package page

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/sourabhakk/folio/pkg/content"
	"github.com/sourabhakk/folio/pkg/effects"
	"github.com/sourabhakk/folio/pkg/theme"
	"github.com/sourabhakk/folio/pkg/viewport"
)

// Kind identifies what a block renders.
type Kind int

const (
	KindHero Kind = iota
	KindHeader
	KindCard
	KindButtons
	KindFooter
)

// String returns the kind name for logs.
func (k Kind) String() string {
	switch k {
	case KindHero:
		return "hero"
	case KindHeader:
		return "header"
	case KindCard:
		return "card"
	case KindButtons:
		return "buttons"
	case KindFooter:
		return "footer"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Block IDs. Regions registered with the viewport controller use the same
// strings, so a log line can be matched to the block on screen.
func HeaderID(section string) string        { return "sec:" + section }
func CardID(section string, n int) string   { return fmt.Sprintf("card:%s:%d", section, n) }
func ImageID(section string, n int) string  { return fmt.Sprintf("img:%s:%d", section, n) }
func ButtonID(section string, n int) string { return fmt.Sprintf("btn:%s:%d", section, n) }
func buttonsID(section string) string       { return "buttons:" + section }

// FooterID is the ID of the footer block.
const FooterID = "footer"

// ImageRows is the fixed height reserved for a card image.
const ImageRows = 8

// Geometry holds the layout tunables.
type Geometry struct {
	HeroHeight       int
	MobileBreakpoint int // below this width the nav collapses
	TwoColumnMin     int // at or above this width cards use two columns
	MaxContentWidth  int
}

// DefaultGeometry returns the stock layout.
func DefaultGeometry() Geometry {
	return Geometry{
		HeroHeight:       12,
		MobileBreakpoint: 80,
		TwoColumnMin:     100,
		MaxContentWidth:  100,
	}
}

// ButtonHit locates one button inside a buttons block.
type ButtonHit struct {
	ID    string
	Label string
	Href  string
	X, Y  int // relative to the block
	W     int
}

// Rect returns the button's cell rectangle relative to its block.
func (h ButtonHit) Rect() effects.Rect {
	return effects.Rect{X: float64(h.X), Y: float64(h.Y), W: float64(h.W), H: 1}
}

// Block is one laid-out unit of the page.
type Block struct {
	Kind      Kind
	ID        string
	Section   string // owning section ID, HeroID for the hero
	Animation content.Animation

	Top, Left, Width int

	// Lines is the block rendered at rest: fully revealed, unfocused and
	// with image placeholders.
	Lines []string

	// Card blocks.
	Card     *content.Card
	ImageRow int // line offset of the image area inside the card, -1 if none

	// Buttons blocks.
	Buttons []ButtonHit
}

// Height returns the block height in lines.
func (b *Block) Height() int {
	return len(b.Lines)
}

// Bottom returns the first line below the block.
func (b *Block) Bottom() int {
	return b.Top + len(b.Lines)
}

// Rect returns the block's cell rectangle in document coordinates.
func (b *Block) Rect() effects.Rect {
	return effects.Rect{X: float64(b.Left), Y: float64(b.Top), W: float64(b.Width), H: float64(len(b.Lines))}
}

// Interval returns the block's span for the viewport controller.
func (b *Block) Interval() viewport.Interval {
	return viewport.Interval{Top: float64(b.Top), Bottom: float64(b.Bottom())}
}

// Document is a laid-out page. It is long-lived: Relayout replaces its
// blocks in place, and bounds providers handed out earlier observe the new
// geometry on their next call.
type Document struct {
	site   *content.Site
	theme  theme.Theme
	styles theme.Styles
	geo    Geometry
	plain  bool

	width  int
	blocks []Block
	index  map[string]int
	spans  map[string]viewport.Interval
	height int
}

// Layout lays site out at width columns using th.
func Layout(site *content.Site, width int, th theme.Theme, geo Geometry) *Document {
	d := &Document{
		geo:   geo,
		plain: lipgloss.ColorProfile() == termenv.Ascii,
	}
	d.SetTheme(th)
	d.Relayout(site, width)
	return d
}

// SetTheme switches palettes. Geometry does not change.
func (d *Document) SetTheme(th theme.Theme) {
	d.theme = th
	d.styles = theme.NewStyles(th)
	if d.site != nil {
		d.Relayout(d.site, d.width)
	}
}

// SetPlain disables raw colour escapes in the hero, for output that is not
// going to a terminal.
func (d *Document) SetPlain(plain bool) {
	d.plain = plain
}

// Relayout rebuilds every block for site at width.
func (d *Document) Relayout(site *content.Site, width int) {
	if width < 20 {
		width = 20
	}
	d.site = site
	d.width = width
	d.blocks = d.blocks[:0]
	d.index = make(map[string]int)
	d.spans = make(map[string]viewport.Interval)

	b := builder{doc: d}
	b.build()
	d.height = b.y

	for i := range d.blocks {
		d.index[d.blocks[i].ID] = i
	}
}

// Site returns the document's content.
func (d *Document) Site() *content.Site {
	return d.site
}

// Styles returns the lipgloss styles in use.
func (d *Document) Styles() theme.Styles {
	return d.styles
}

// Theme returns the palette in use.
func (d *Document) Theme() theme.Theme {
	return d.theme
}

// Width returns the layout width.
func (d *Document) Width() int {
	return d.width
}

// Height returns the total number of lines.
func (d *Document) Height() int {
	return d.height
}

// Mobile reports whether the narrow layout is in effect.
func (d *Document) Mobile() bool {
	return d.width < d.geo.MobileBreakpoint
}

// Blocks returns the laid-out blocks in document order.
func (d *Document) Blocks() []Block {
	return d.blocks
}

// Block returns the block with id.
func (d *Document) Block(id string) (*Block, bool) {
	i, ok := d.index[id]
	if !ok {
		return nil, false
	}
	return &d.blocks[i], true
}

// Interval returns the current span of a block or card image.
func (d *Document) Interval(id string) (viewport.Interval, error) {
	if b, ok := d.Block(id); ok {
		return b.Interval(), nil
	}
	if strings.HasPrefix(id, "img:") {
		card, ok := d.Block("card:" + strings.TrimPrefix(id, "img:"))
		if ok && card.ImageRow >= 0 {
			top := float64(card.Top + card.ImageRow)
			return viewport.Interval{Top: top, Bottom: top + ImageRows}, nil
		}
	}
	return viewport.Interval{}, fmt.Errorf("page: no block %q: %w", id, viewport.ErrGeometryUnavailable)
}

// Bounds returns a provider that looks id up in the document each time it
// is called.
func (d *Document) Bounds(id string) viewport.BoundsFunc {
	return func() (viewport.Interval, error) {
		return d.Interval(id)
	}
}

// SectionBounds returns a provider for a section's full span: from its
// header to the next section. HeroID spans the hero.
func (d *Document) SectionBounds(id string) viewport.BoundsFunc {
	return func() (viewport.Interval, error) {
		iv, ok := d.spans[id]
		if !ok {
			return viewport.Interval{}, fmt.Errorf("page: no section %q: %w", id, viewport.ErrGeometryUnavailable)
		}
		return iv, nil
	}
}

// SectionTop returns the first line of a section, the target of anchor
// navigation.
func (d *Document) SectionTop(id string) (int, bool) {
	iv, ok := d.spans[id]
	if !ok {
		return 0, false
	}
	return int(iv.Top), true
}

// MaxScroll returns the largest scroll offset for a viewport of height
// lines.
func (d *Document) MaxScroll(height int) int {
	return max(0, d.height-height)
}

// Focusables returns the IDs of cards that take keyboard focus, in
// document order.
func (d *Document) Focusables() []string {
	var ids []string
	for i := range d.blocks {
		b := &d.blocks[i]
		if b.Kind == KindCard && b.Card.Focusable() {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

// Hit is the result of a pointer hit test.
type Hit struct {
	Block  *Block
	Button *ButtonHit
}

// HitTest finds the card or button under document cell (x, line).
func (d *Document) HitTest(x, line int) (Hit, bool) {
	px, py := float64(x)+0.5, float64(line)+0.5
	for i := range d.blocks {
		b := &d.blocks[i]
		if !b.Rect().Contains(px, py) {
			continue
		}
		switch b.Kind {
		case KindCard:
			return Hit{Block: b}, true
		case KindButtons:
			for j := range b.Buttons {
				h := &b.Buttons[j]
				r := h.Rect()
				if r.Contains(px-float64(b.Left), py-float64(b.Top)) {
					return Hit{Block: b, Button: h}, true
				}
			}
		}
	}
	return Hit{}, false
}
