package page

import (
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/sourabhakk/folio/pkg/components"
	"github.com/sourabhakk/folio/pkg/content"
	"github.com/sourabhakk/folio/pkg/effects"
	"github.com/sourabhakk/folio/pkg/tui"
	"github.com/sourabhakk/folio/pkg/viewport"
)

// MaxFade is the fade level at which a revealed block is fully drawn.
const MaxFade = 3

// slideStep is the horizontal offset per remaining fade level for the
// slide-in animations.
const slideStep = 2

// Image is the load state of a card image.
type Image struct {
	Lines []string
	Err   error
}

// State is the per-frame animation and interaction state the renderer
// reads. The zero value draws everything hidden.
type State struct {
	// RevealAll draws every block at full fade, for static output.
	RevealAll bool
	// Fade maps block IDs to a level in 0..MaxFade. Missing means hidden.
	Fade map[string]int

	Focus   string // focused card ID
	Hover   string // hovered card ID
	Tilt    effects.Transform
	Ripples *effects.Ripples
	Now     time.Time

	Images map[string]Image

	Orbs    []effects.Orb
	Elapsed time.Duration

	// Tagline, when set, replaces the hero tagline (typewriter output).
	Tagline *string
}

func (s State) fade(id string) int {
	if s.RevealAll {
		return MaxFade
	}
	return min(s.Fade[id], MaxFade)
}

func ivLines(top, bottom int) viewport.Interval {
	return viewport.Interval{Top: float64(top), Bottom: float64(bottom)}
}

type piece struct {
	left, width int
	text        string
}

// View renders lines [scroll, scroll+height) of the document, each padded
// to the document width.
func (d *Document) View(scroll, height int, st State) []string {
	if height <= 0 {
		return nil
	}
	rows := make([][]piece, height)

	for i := range d.blocks {
		b := &d.blocks[i]
		top := b.Top
		if b.Kind == KindCard && b.ID == st.Hover && st.Tilt.Lifted() && st.fade(b.ID) >= MaxFade {
			top--
		}
		if top+b.Height() <= scroll || top >= scroll+height {
			continue
		}
		for j, line := range d.renderBlock(b, st) {
			y := top + j - scroll
			if y < 0 || y >= height {
				continue
			}
			rows[y] = place(rows[y], piece{left: b.Left, width: b.Width, text: line})
		}
	}

	out := make([]string, height)
	for y, row := range rows {
		out[y] = compose(row, d.width)
	}
	return out
}

// place adds p to a row, evicting pieces it overlaps. Later blocks draw
// over earlier ones.
func place(row []piece, p piece) []piece {
	kept := row[:0]
	for _, q := range row {
		if q.left < p.left+p.width && p.left < q.left+q.width {
			continue
		}
		kept = append(kept, q)
	}
	return append(kept, p)
}

func compose(row []piece, width int) string {
	sort.Slice(row, func(i, j int) bool { return row[i].left < row[j].left })
	var sb strings.Builder
	cursor := 0
	for _, p := range row {
		if p.left > cursor {
			sb.WriteString(strings.Repeat(" ", p.left-cursor))
		}
		sb.WriteString(components.PadRight(components.Truncate(p.text, p.width), p.width))
		cursor = p.left + p.width
	}
	return components.PadRight(components.Truncate(sb.String(), width), width)
}

// renderBlock draws b for st. The result always has b.Height() lines.
func (d *Document) renderBlock(b *Block, st State) []string {
	var lines []string
	switch b.Kind {
	case KindHero:
		return heroLines(d, b.Height(), st)
	case KindFooter:
		return b.Lines
	case KindCard:
		cs := cardState{
			focused: st.Focus == b.ID,
			image:   imageFor(st, b),
		}
		if st.Hover == b.ID {
			cs.tilt = st.Tilt
		}
		lines = cardLines(d, b.Card, b.Width, b.Height(), cs)
	case KindButtons:
		lines = buttonLines(d, b, st)
	default:
		lines = b.Lines
	}
	return d.fadeLines(b, lines, st.fade(fadeKey(b)))
}

// fadeKey returns the ID whose reveal drives b. Button rows follow their
// section header.
func fadeKey(b *Block) string {
	if b.Kind == KindButtons {
		return HeaderID(b.Section)
	}
	return b.ID
}

// fadeLines applies a partial reveal: hidden at level 0, then muted and
// dim plain text sliding toward its final column.
func (d *Document) fadeLines(b *Block, lines []string, level int) []string {
	if level >= MaxFade {
		return lines
	}
	out := make([]string, len(lines))
	if level <= 0 {
		return out
	}
	offset := (MaxFade - level) * slideStep
	switch b.Animation {
	case content.SlideInLeft:
		offset = -offset
	case content.SlideInRight:
	default:
		offset = 0
	}
	style := d.styles.Fade(level)
	for i, line := range lines {
		out[i] = components.Shift(style.Render(components.Strip(line)), offset, b.Width)
	}
	return out
}

func imageFor(st State, b *Block) *Image {
	if b.ImageRow < 0 {
		return nil
	}
	img, ok := st.Images["img:"+strings.TrimPrefix(b.ID, "card:")]
	if !ok {
		return nil
	}
	return &img
}

// heroLines draws the hero: the orb field with the name, tagline and
// subtitle centred over it.
func heroLines(d *Document, height int, st State) []string {
	base, err := colorful.Hex(d.theme.Background)
	if err != nil {
		base = colorful.Color{}
	}
	canvas := tui.NewCanvas(d.width, height)
	if len(st.Orbs) > 0 && !d.plain {
		canvas.FillField(effects.RenderOrbs(d.width, height, base, st.Orbs, st.Elapsed))
	}

	site := d.site
	tagline := site.Tagline
	if st.Tagline != nil {
		tagline = *st.Tagline
	}
	mid := height / 2
	canvas.TextCentered(mid-2, site.Name, d.theme.Foreground, true)
	canvas.TextCentered(mid, tagline, d.theme.Accent2, false)
	if site.Subtitle != "" {
		canvas.TextCentered(mid+1, site.Subtitle, d.theme.Dim, false)
	}
	return canvas.Lines(d.plain)
}

type cardState struct {
	focused bool
	tilt    effects.Transform
	image   *Image
}

// cardContent returns the inner lines of a card, before the border.
func cardContent(d *Document, c *content.Card, width int, cs cardState) []string {
	width = max(width, 1)
	s := d.styles

	title := c.Title
	if c.Kind == content.KindProject && c.Link != "" {
		title += " ↗"
	}
	lines := []string{s.CardTitle.Render(components.Truncate(title, width))}

	if c.Image != "" {
		lines = append(lines, imageArea(d, width, cs.image)...)
	}
	lines = append(lines, markdownLines(d, content.ParseMarkdown(c.Body), width)...)

	if len(c.Tags) > 0 {
		tags := make([]string, len(c.Tags))
		for i, t := range c.Tags {
			tags[i] = "#" + t
		}
		lines = append(lines, "")
		for _, l := range components.Wrap(strings.Join(tags, " "), width) {
			lines = append(lines, s.Tag.Render(l))
		}
	}
	if c.Kind == content.KindProject && c.Link != "" {
		lines = append(lines, s.Link.Render(components.TruncateWithTail(c.Link, width, "…")))
	}
	return lines
}

// imageArea returns exactly ImageRows lines: the loaded image, a
// placeholder while loading, or a failure notice.
func imageArea(d *Document, width int, img *Image) []string {
	out := make([]string, ImageRows)
	switch {
	case img == nil:
		for i := range out {
			out[i] = d.styles.Muted.Render(strings.Repeat("░", width))
		}
		out[ImageRows/2] = d.styles.Dim.Render(components.PadCenter("loading image…", width))
	case img.Err != nil:
		out[0] = d.styles.Dim.Render(components.Truncate("image unavailable", width))
	default:
		for i := 0; i < ImageRows && i < len(img.Lines); i++ {
			out[i] = img.Lines[i]
		}
	}
	return out
}

// cardLines renders a card box of exactly width x height cells.
func cardLines(d *Document, c *content.Card, width, height int, cs cardState) []string {
	inner := cardContent(d, c, width-cardChrome, cs)
	style := d.styles.Card
	switch {
	case cs.focused:
		style = d.styles.CardFocused
	case cs.tilt.Lifted():
		style = tiltStyle(style, cs.tilt.LitEdges(), lipgloss.Color(d.theme.Accent))
	}
	box := style.Width(width - 2).Height(height - 2).Render(strings.Join(inner, "\n"))
	lines := strings.Split(box, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func tiltStyle(base lipgloss.Style, e effects.Edges, lit lipgloss.TerminalColor) lipgloss.Style {
	if e.Top {
		base = base.BorderTopForeground(lit)
	}
	if e.Bottom {
		base = base.BorderBottomForeground(lit)
	}
	if e.Left {
		base = base.BorderLeftForeground(lit)
	}
	if e.Right {
		base = base.BorderRightForeground(lit)
	}
	return base
}

// buttonLines draws a buttons block. A live ripple repaints the cells it
// covers.
func buttonLines(d *Document, b *Block, st State) []string {
	h := 0
	for _, hit := range b.Buttons {
		h = max(h, hit.Y+2)
	}
	rows := make([][]piece, h)
	for _, hit := range b.Buttons {
		rows[hit.Y] = append(rows[hit.Y], piece{left: hit.X, width: hit.W, text: d.buttonLabel(hit, st)})
	}
	lines := make([]string, h)
	for y, row := range rows {
		lines[y] = compose(row, b.Width)
	}
	return lines
}

func (d *Document) buttonLabel(hit ButtonHit, st State) string {
	text := "  " + hit.Label + "  "
	if st.Ripples == nil {
		return d.styles.Button.UnsetPadding().Render(text)
	}
	rp, ok := st.Ripples.Get(hit.ID, st.Now)
	if !ok {
		return d.styles.Button.UnsetPadding().Render(text)
	}
	var sb strings.Builder
	x := 0
	for _, r := range text {
		style := d.styles.Button.UnsetPadding()
		if rp.Covers(float64(x)+0.5, 0.5, st.Now) {
			style = d.styles.Ripple.UnsetPadding()
		}
		sb.WriteString(style.Render(string(r)))
		x++
	}
	return sb.String()
}
