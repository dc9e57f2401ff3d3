package page

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sourabhakk/folio/pkg/components"
	"github.com/sourabhakk/folio/pkg/content"
)

const (
	columnGap  = 2
	cardChrome = 4 // border and padding, left plus right
)

// builder walks the site top to bottom, appending blocks.
type builder struct {
	doc *Document
	y   int

	left, width int // content column
	cols        int
}

func (b *builder) build() {
	d := b.doc
	margin := 2
	if d.Mobile() {
		margin = 1
	}
	b.width = min(d.width-2*margin, d.geo.MaxContentWidth)
	b.left = (d.width - b.width) / 2
	b.cols = 1
	if d.width >= d.geo.TwoColumnMin && !d.Mobile() {
		b.cols = 2
	}

	b.hero()
	for i := range d.site.Sections {
		start := b.y
		sec := &d.site.Sections[i]
		b.header(sec)
		b.cards(sec)
		b.buttons(sec)
		d.spans[sec.ID] = ivLines(start, b.y)
	}
	b.footer()
}

func (b *builder) add(blk Block) {
	blk.Top = b.y
	b.doc.blocks = append(b.doc.blocks, blk)
	b.y += len(blk.Lines)
}

func (b *builder) hero() {
	d := b.doc
	h := max(d.geo.HeroHeight, 3)
	lines := heroLines(d, h, State{RevealAll: true})
	b.add(Block{Kind: KindHero, ID: content.HeroID, Section: content.HeroID, Left: 0, Width: d.width, Lines: lines, ImageRow: -1})
	d.spans[content.HeroID] = ivLines(0, b.y)
}

func (b *builder) header(sec *content.Section) {
	d := b.doc
	lines := []string{"", d.styles.SectionTitle.Render("▍" + sec.Title), ""}
	if body := markdownLines(d, content.ParseMarkdown(sec.Body), b.width); len(body) > 0 {
		lines = append(lines, body...)
		lines = append(lines, "")
	}
	b.add(Block{
		Kind: KindHeader, ID: HeaderID(sec.ID), Section: sec.ID, Animation: sec.Animation,
		Left: b.left, Width: b.width, Lines: lines, ImageRow: -1,
	})
}

// cards lays the section's cards out in rows of b.cols. Cards in a row
// share the tallest card's height, and each row is followed by a blank
// line that a hovered card may lift into.
func (b *builder) cards(sec *content.Section) {
	if len(sec.Cards) == 0 {
		return
	}
	d := b.doc
	colW := (b.width - columnGap*(b.cols-1)) / b.cols

	for start := 0; start < len(sec.Cards); start += b.cols {
		end := min(start+b.cols, len(sec.Cards))

		rowH := 0
		for n := start; n < end; n++ {
			rowH = max(rowH, len(cardContent(d, &sec.Cards[n], colW-cardChrome, cardState{}))+2)
		}

		top := b.y
		for n := start; n < end; n++ {
			card := &sec.Cards[n]
			imageRow := -1
			if card.Image != "" {
				imageRow = 2 // below the top border and the title
			}
			d.blocks = append(d.blocks, Block{
				Kind: KindCard, ID: CardID(sec.ID, n), Section: sec.ID, Animation: sec.Animation,
				Top: top, Left: b.left + (n-start)*(colW+columnGap), Width: colW,
				Lines: cardLines(d, card, colW, rowH, cardState{}),
				Card:  card, ImageRow: imageRow,
			})
		}
		b.y = top + rowH + 1
	}
}

func (b *builder) buttons(sec *content.Section) {
	if len(sec.Buttons) == 0 {
		return
	}
	d := b.doc
	var hits []ButtonHit
	x, y := 0, 0
	for n, btn := range sec.Buttons {
		w := components.VisibleLen(btn.Label) + 4
		if x > 0 && x+w > b.width {
			x = 0
			y += 2
		}
		hits = append(hits, ButtonHit{ID: ButtonID(sec.ID, n), Label: btn.Label, Href: btn.Href, X: x, Y: y, W: w})
		x += w + 2
	}
	blk := Block{
		Kind: KindButtons, ID: buttonsID(sec.ID), Section: sec.ID, Animation: sec.Animation,
		Left: b.left, Width: b.width, Buttons: hits, ImageRow: -1,
	}
	blk.Lines = buttonLines(d, &blk, State{RevealAll: true})
	b.add(blk)
}

func (b *builder) footer() {
	d := b.doc
	rule := d.styles.Dim.Render(strings.Repeat("─", b.width))
	lines := []string{"", rule, d.styles.Footer.Render(components.PadCenter(d.site.Footer, b.width)), ""}
	b.add(Block{Kind: KindFooter, ID: FooterID, Left: b.left, Width: b.width, Lines: lines, ImageRow: -1})
}

// markdownLines renders parsed markdown wrapped at width.
func markdownLines(d *Document, blocks []content.Block, width int) []string {
	var lines []string
	for i, blk := range blocks {
		if i > 0 && !(blk.Bullet && blocks[i-1].Bullet) {
			lines = append(lines, "")
		}
		switch {
		case blk.Code:
			for _, s := range blk.Spans {
				lines = append(lines, d.styles.Code.Render(components.Truncate("  "+s.Text, width)))
			}
		case blk.Heading > 0:
			lines = append(lines, d.styles.Strong.Render(components.Truncate(blk.PlainText(), width)))
		case blk.Bullet:
			wrapped := components.Wrap(renderSpans(d, blk.Spans), width-2)
			for j, w := range wrapped {
				prefix := "  "
				if j == 0 {
					prefix = d.styles.SectionTitle.Render("•") + " "
				}
				lines = append(lines, prefix+w)
			}
		default:
			lines = append(lines, components.Wrap(renderSpans(d, blk.Spans), width)...)
		}
	}
	return lines
}

func renderSpans(d *Document, spans []content.Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(spanStyle(d, s.Style).Render(s.Text))
	}
	return sb.String()
}

func spanStyle(d *Document, st content.SpanStyle) lipgloss.Style {
	style := d.styles.Body
	switch {
	case st&content.StyleLink != 0:
		style = d.styles.Link
	case st&content.StyleCode != 0:
		style = d.styles.Code
	}
	if st&content.StyleStrong != 0 {
		style = style.Bold(true)
	}
	if st&content.StyleEmphasis != 0 {
		style = style.Italic(true)
	}
	return style
}
