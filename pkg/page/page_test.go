package page

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sourabhakk/folio/pkg/components"
	"github.com/sourabhakk/folio/pkg/content"
	"github.com/sourabhakk/folio/pkg/effects"
	"github.com/sourabhakk/folio/pkg/theme"
	"github.com/sourabhakk/folio/pkg/viewport"
)

func newTestDoc(t *testing.T, width int) *Document {
	t.Helper()
	d := Layout(content.Default(), width, theme.Get("ocean"), DefaultGeometry())
	d.SetPlain(true)
	return d
}

func TestLayoutBlockOrder(t *testing.T) {
	d := newTestDoc(t, 120)
	blocks := d.Blocks()
	if blocks[0].Kind != KindHero || blocks[0].ID != content.HeroID {
		t.Fatalf("first block should be the hero, got %s %q", blocks[0].Kind, blocks[0].ID)
	}
	if blocks[len(blocks)-1].Kind != KindFooter {
		t.Errorf("last block should be the footer, got %s", blocks[len(blocks)-1].Kind)
	}
	if blocks[0].Height() != DefaultGeometry().HeroHeight {
		t.Errorf("hero height = %d, want %d", blocks[0].Height(), DefaultGeometry().HeroHeight)
	}

	last := 0
	for _, b := range blocks {
		if b.Top < last && b.Kind != KindCard {
			t.Errorf("block %q starts at %d, before previous bottom %d", b.ID, b.Top, last)
		}
		last = max(last, b.Bottom())
	}
	if d.Height() != last {
		t.Errorf("Height() = %d, want %d", d.Height(), last)
	}
}

func TestTwoColumnsAtWideWidth(t *testing.T) {
	tests := []struct {
		width   int
		sameRow bool
	}{
		{width: 120, sameRow: true},
		{width: 100, sameRow: true},
		{width: 99, sameRow: false},
		{width: 60, sameRow: false},
	}
	for _, tt := range tests {
		d := newTestDoc(t, tt.width)
		a, _ := d.Block(CardID("skills", 0))
		b, _ := d.Block(CardID("skills", 1))
		if got := a.Top == b.Top; got != tt.sameRow {
			t.Errorf("width %d: cards on same row = %v, want %v", tt.width, got, tt.sameRow)
		}
		if tt.sameRow && b.Left <= a.Left {
			t.Errorf("width %d: second column should be right of the first", tt.width)
		}
	}
}

func TestCardsInRowShareHeight(t *testing.T) {
	d := newTestDoc(t, 120)
	a, _ := d.Block(CardID("skills", 0))
	b, _ := d.Block(CardID("skills", 1))
	if a.Height() != b.Height() {
		t.Errorf("row heights differ: %d vs %d", a.Height(), b.Height())
	}
	for _, line := range a.Lines {
		if w := components.VisibleLen(line); w != a.Width {
			t.Errorf("card line width %d, want %d: %q", w, a.Width, line)
		}
	}
}

func TestBoundsFollowRelayout(t *testing.T) {
	d := newTestDoc(t, 120)
	bounds := d.Bounds(CardID("projects", 2))

	wide, err := bounds()
	if err != nil {
		t.Fatalf("bounds: %v", err)
	}
	d.Relayout(d.Site(), 60)
	narrow, err := bounds()
	if err != nil {
		t.Fatalf("bounds after relayout: %v", err)
	}
	if narrow == wide {
		t.Errorf("bounds did not change after relayout: %+v", narrow)
	}
}

func TestBoundsMissingBlock(t *testing.T) {
	d := newTestDoc(t, 120)
	_, err := d.Bounds("card:nope:0")()
	if !errors.Is(err, viewport.ErrGeometryUnavailable) {
		t.Errorf("expected ErrGeometryUnavailable, got %v", err)
	}

	site := content.Default()
	site.Sections = site.Sections[:1]
	bounds := d.Bounds(CardID("projects", 0))
	d.Relayout(site, 120)
	if _, err := bounds(); !errors.Is(err, viewport.ErrGeometryUnavailable) {
		t.Errorf("removed block should be unavailable, got %v", err)
	}
}

func TestSectionSpansAreContiguous(t *testing.T) {
	d := newTestDoc(t, 120)
	prev, err := d.SectionBounds(content.HeroID)()
	if err != nil {
		t.Fatal(err)
	}
	if prev.Top != 0 {
		t.Errorf("hero span starts at %g", prev.Top)
	}
	for _, sec := range d.Site().Sections {
		iv, err := d.SectionBounds(sec.ID)()
		if err != nil {
			t.Fatalf("section %q: %v", sec.ID, err)
		}
		if iv.Top != prev.Bottom {
			t.Errorf("section %q starts at %g, previous ends at %g", sec.ID, iv.Top, prev.Bottom)
		}
		top, ok := d.SectionTop(sec.ID)
		if !ok || float64(top) != iv.Top {
			t.Errorf("SectionTop(%q) = %d, %v", sec.ID, top, ok)
		}
		prev = iv
	}
	if _, ok := d.SectionTop("missing"); ok {
		t.Error("SectionTop should fail for unknown section")
	}
}

func TestImageBoundsInsideCard(t *testing.T) {
	site := content.Default()
	site.Sections[2].Cards[0].Image = "shot.png"
	d := Layout(site, 120, theme.Get("ocean"), DefaultGeometry())

	card, _ := d.Block(CardID("projects", 0))
	img, err := d.Interval(ImageID("projects", 0))
	if err != nil {
		t.Fatal(err)
	}
	if img.Top <= float64(card.Top) || img.Bottom > float64(card.Bottom()) {
		t.Errorf("image %+v not inside card [%d, %d)", img, card.Top, card.Bottom())
	}
	if img.Height() != ImageRows {
		t.Errorf("image height %g, want %d", img.Height(), ImageRows)
	}
	if _, err := d.Interval(ImageID("projects", 1)); err == nil {
		t.Error("card without an image should have no image bounds")
	}
}

func TestViewHidesUnrevealedBlocks(t *testing.T) {
	d := newTestDoc(t, 100)
	hdr, _ := d.Block(HeaderID("about"))

	hidden := d.View(hdr.Top, hdr.Height(), State{})
	for _, line := range hidden {
		if strings.TrimSpace(components.Strip(line)) != "" {
			t.Errorf("unrevealed header drew %q", line)
		}
	}

	shown := d.View(hdr.Top, hdr.Height(), State{Fade: map[string]int{hdr.ID: MaxFade}})
	if !strings.Contains(components.Strip(strings.Join(shown, "\n")), "About") {
		t.Error("revealed header should show its title")
	}
}

func TestViewLinesAreFullWidth(t *testing.T) {
	d := newTestDoc(t, 90)
	for _, line := range d.View(0, 40, State{RevealAll: true}) {
		if w := components.VisibleLen(line); w != 90 {
			t.Fatalf("line width %d, want 90: %q", w, line)
		}
	}
}

func TestSlideInShiftsPartialFade(t *testing.T) {
	d := newTestDoc(t, 100)
	hdr, _ := d.Block(HeaderID("about")) // slide-in-left
	full := d.View(hdr.Top+1, 1, State{Fade: map[string]int{hdr.ID: MaxFade}})[0]
	part := d.View(hdr.Top+1, 1, State{Fade: map[string]int{hdr.ID: 1}})[0]

	// The title is "▍About"; a level 1 slide clips its first four cells.
	fullAt := strings.Index(components.Strip(full), "ut")
	partAt := strings.Index(components.Strip(part), "ut")
	if fullAt < 0 || partAt < 0 {
		t.Fatalf("title missing: %q / %q", full, part)
	}
	if partAt >= fullAt {
		t.Errorf("slide-in-left should start left of its final column: %d vs %d", partAt, fullAt)
	}
	if strings.Contains(components.Strip(part), "About") {
		t.Errorf("partially revealed title should be clipped: %q", part)
	}
}

func TestHitTest(t *testing.T) {
	d := newTestDoc(t, 120)
	card, _ := d.Block(CardID("projects", 1))
	hit, ok := d.HitTest(card.Left+1, card.Top+1)
	if !ok || hit.Block.ID != card.ID {
		t.Errorf("expected hit on %q, got %+v %v", card.ID, hit, ok)
	}

	row, _ := d.Block(buttonsID("about"))
	btn := row.Buttons[1]
	hit, ok = d.HitTest(row.Left+btn.X+1, row.Top+btn.Y)
	if !ok || hit.Button == nil || hit.Button.ID != ButtonID("about", 1) {
		t.Errorf("expected hit on second button, got %+v %v", hit, ok)
	}

	if _, ok := d.HitTest(0, 0); ok {
		t.Error("hero should not be hit-testable")
	}
}

func TestFocusablesSkipPlainCards(t *testing.T) {
	site := content.Default()
	site.Sections[1].Cards[0].Kind = content.KindCard
	d := Layout(site, 120, theme.Get("ocean"), DefaultGeometry())
	for _, id := range d.Focusables() {
		if id == CardID("skills", 0) {
			t.Error("plain card should not be focusable")
		}
	}
	if len(d.Focusables()) == 0 {
		t.Error("expected focusable cards")
	}
}

func TestHoverLiftsCard(t *testing.T) {
	d := newTestDoc(t, 120)
	card, _ := d.Block(CardID("mindset", 0))
	st := State{RevealAll: true}
	rest := d.View(card.Top-1, 1, st)[0]

	st.Hover = card.ID
	st.Tilt = effects.Tilt(card.Rect(), float64(card.Left+1), float64(card.Top+1))
	lifted := d.View(card.Top-1, 1, st)[0]

	if rest == lifted {
		t.Error("hovered card should lift into the line above")
	}
	if !strings.Contains(lifted, "╭") {
		t.Errorf("lifted line should show the card's top border: %q", lifted)
	}
}

func TestRippleKeepsButtonGeometry(t *testing.T) {
	d := newTestDoc(t, 120)
	row, _ := d.Block(buttonsID("about"))
	now := time.Now()
	var ripples effects.Ripples
	btn := row.Buttons[0]
	ripples.Start(btn.ID, effects.NewRipple(btn.Rect(), 2, 0.5, now))

	plain := buttonLines(d, row, State{})
	rippled := buttonLines(d, row, State{Ripples: &ripples, Now: now.Add(200 * time.Millisecond)})
	if components.Strip(plain[0]) != components.Strip(rippled[0]) {
		t.Error("ripple must not change button text")
	}
	if len(plain) != len(rippled) {
		t.Error("ripple must not change block height")
	}
}

func TestNavMarksActiveLink(t *testing.T) {
	d := newTestDoc(t, 120)
	lines := d.Nav(NavState{Active: "skills"}, nil)
	if len(lines) != NavHeight {
		t.Fatalf("nav has %d lines, want %d", len(lines), NavHeight)
	}
	plain := components.Strip(lines[0])
	for _, l := range d.Site().Nav {
		if !strings.Contains(plain, l.Label) {
			t.Errorf("nav missing link %q: %q", l.Label, plain)
		}
	}
	if d.Menu(NavState{MenuOpen: true}, nil) != nil {
		t.Error("desktop layout should not render a menu")
	}
}

func TestMobileNavCollapses(t *testing.T) {
	d := newTestDoc(t, 60)
	if !d.Mobile() {
		t.Fatal("60 columns should use the mobile layout")
	}
	closed := components.Strip(d.Nav(NavState{}, nil)[0])
	if strings.Contains(closed, "Projects") {
		t.Error("mobile nav should hide links behind the toggle")
	}
	if !strings.Contains(closed, "☰") {
		t.Errorf("mobile nav should show the toggle: %q", closed)
	}
	menu := d.Menu(NavState{MenuOpen: true}, nil)
	if len(menu) != len(d.Site().Nav) {
		t.Errorf("menu has %d lines, want %d", len(menu), len(d.Site().Nav))
	}
}

func TestOverlayRightAligns(t *testing.T) {
	out := Overlay([]string{"aaaaaaaaaa", "bbbbbbbbbb"}, []string{"XY"}, 10)
	if out[0] != "aaaaaaaaXY" {
		t.Errorf("got %q", out[0])
	}
	if out[1] != "bbbbbbbbbb" {
		t.Errorf("second line should be untouched: %q", out[1])
	}
}
