package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sourabhakk/folio/pkg/config"
	"github.com/sourabhakk/folio/pkg/content"
	"github.com/sourabhakk/folio/pkg/effects"
	"github.com/sourabhakk/folio/pkg/imageload"
	"github.com/sourabhakk/folio/pkg/page"
)

type recordingTracker struct {
	views  int
	events []string
}

func (r *recordingTracker) PageView() { r.views++ }

func (r *recordingTracker) Event(category, action, label string) {
	r.events = append(r.events, category+"/"+action+"/"+label)
}

func (r *recordingTracker) has(event string) bool {
	for _, e := range r.events {
		if e == event {
			return true
		}
	}
	return false
}

// newTestModel builds a model on the demo site and lays it out at w x h.
func newTestModel(t *testing.T, site *content.Site, w, h int) (Model, *recordingTracker) {
	t.Helper()
	if site == nil {
		site = content.Default()
	}
	cfg := config.DefaultConfig()
	cfg.Effects.Orbs = 0
	tr := &recordingTracker{}
	m := New(Options{Config: cfg, Site: site, Tracker: tr})
	m, _ = update(m, tea.WindowSizeMsg{Width: w, Height: h})
	return m, tr
}

// update sends a message through Update and returns the updated model.
func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// settle fires the pending debounce.
func settle(m Model) Model {
	m, _ = update(m, DebounceEvent{Tag: m.debounceTag})
	return m
}

// scrollTo jumps the viewport to line and evaluates.
func scrollTo(m Model, line int) Model {
	m.scroll = clamp(line, 0, m.maxScroll())
	m.debounceTag++
	return settle(m)
}

// runScroller ticks until any smooth scroll has settled.
func runScroller(t *testing.T, m Model) Model {
	t.Helper()
	now := m.now
	for i := 0; i < 600 && m.scroller.Active(); i++ {
		now = now.Add(33 * time.Millisecond)
		m, _ = update(m, TickEvent{Time: now})
	}
	if m.scroller.Active() {
		t.Fatal("smooth scroll did not settle")
	}
	return m
}

func TestInitReturnsCmd(t *testing.T) {
	m := New(Options{Site: content.Default()})
	if m.Init() == nil {
		t.Fatal("Init() returned nil, expected tick and page view commands")
	}
}

func TestPageViewCmdTracks(t *testing.T) {
	tr := &recordingTracker{}
	PageViewCmd(tr)()
	if tr.views != 1 {
		t.Errorf("expected one page view, got %d", tr.views)
	}
}

func TestWindowSizeLaysOutAndEvaluates(t *testing.T) {
	m, _ := newTestModel(t, nil, 120, 30)
	if m.Width() != 120 || m.Height() != 30 {
		t.Errorf("size = %dx%d, want 120x30", m.Width(), m.Height())
	}
	if !m.ready {
		t.Fatal("model should be ready after the first WindowSizeMsg")
	}
	if m.NavScrolled() {
		t.Error("navbar should not be scrolled at the top")
	}
	if m.ActiveSection() == "" {
		t.Error("a section should be active after the first evaluation")
	}
	if !m.Revealed(page.HeaderID("about")) {
		t.Error("the first section header is in view and should be revealed")
	}
}

func TestScrollIsDebounced(t *testing.T) {
	m, _ := newTestModel(t, nil, 120, 30)
	for i := 0; i < 10; i++ {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.Scroll() != 10 {
		t.Fatalf("scroll = %d, want 10", m.Scroll())
	}

	stale, _ := update(m, DebounceEvent{Tag: m.debounceTag - 1})
	if stale.NavScrolled() {
		t.Error("a superseded debounce event must not evaluate")
	}

	m = settle(m)
	if !m.NavScrolled() {
		t.Error("navbar should be scrolled past depth 5")
	}

	m = scrollTo(m, 2)
	if m.NavScrolled() {
		t.Error("navbar should return to normal above depth 5")
	}
}

func TestScrollClamps(t *testing.T) {
	m, _ := newTestModel(t, nil, 120, 30)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Scroll() != 0 {
		t.Errorf("scroll went negative: %d", m.Scroll())
	}
	m, _ = update(m, keyRunes("G"))
	if m.Scroll() != m.maxScroll() {
		t.Errorf("G should scroll to bottom: %d vs %d", m.Scroll(), m.maxScroll())
	}
	m = settle(m)
	if !m.Revealed(page.HeaderID("contact")) {
		t.Error("last section should be revealed at the bottom")
	}
	m, _ = update(m, keyRunes("g"))
	if m.Scroll() != 0 {
		t.Errorf("g should scroll to top, got %d", m.Scroll())
	}
}

func TestRevealFadesOverTicks(t *testing.T) {
	m, _ := newTestModel(t, nil, 120, 30)
	id := page.HeaderID("about")
	if got := m.st.fade[id]; got != 0 {
		t.Fatalf("fade starts at %d, want 0", got)
	}
	now := m.now
	for i := 1; i <= page.MaxFade+2; i++ {
		now = now.Add(33 * time.Millisecond)
		m, _ = update(m, TickEvent{Time: now})
		if want := min(i, page.MaxFade); m.st.fade[id] != want {
			t.Errorf("after %d ticks fade = %d, want %d", i, m.st.fade[id], want)
		}
	}
}

func TestTabCyclesFocus(t *testing.T) {
	m, _ := newTestModel(t, nil, 120, 30)
	if m.FocusedID() != "" {
		t.Fatalf("expected no initial focus, got %q", m.FocusedID())
	}
	first := m.focusables[0]
	last := m.focusables[len(m.focusables)-1]

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.FocusedID() != first {
		t.Errorf("after Tab, expected %q, got %q", first, m.FocusedID())
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.FocusedID() != last {
		t.Errorf("Shift+Tab from the first card should wrap to %q, got %q", last, m.FocusedID())
	}

	b, _ := m.doc.Block(last)
	if b.Top < m.Scroll() || b.Bottom() > m.Scroll()+m.viewportHeight() {
		t.Errorf("focused card [%d,%d) not in view at scroll %d", b.Top, b.Bottom(), m.Scroll())
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.FocusedID() != "" {
		t.Error("Esc should clear focus")
	}
}

func TestEnterOnProjectTracksClick(t *testing.T) {
	m, tr := newTestModel(t, nil, 120, 30)
	m.FocusCard(page.CardID("projects", 0))
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	if !tr.has("Projects/Click/folio") {
		t.Errorf("expected project click event, got %v", tr.events)
	}
	if !strings.HasPrefix(m.Status(), "open https://") {
		t.Errorf("external link should be shown in the status line, got %q", m.Status())
	}
}

func TestNumberKeyJumpsToSection(t *testing.T) {
	m, tr := newTestModel(t, nil, 120, 30)
	m, _ = update(m, keyRunes("4")) // Projects
	if !m.scroller.Active() {
		t.Fatal("jump should start a smooth scroll")
	}
	if !tr.has("Nav/Jump/projects") {
		t.Errorf("expected nav jump event, got %v", tr.events)
	}

	m = runScroller(t, m)
	top, _ := m.doc.SectionTop("projects")
	want := effects.AnchorOffset(top, page.NavHeight, m.maxScroll())
	if m.Scroll() != want {
		t.Errorf("scroll = %d, want %d", m.Scroll(), want)
	}
	if m.ActiveSection() != "projects" && m.Scroll() != m.maxScroll() {
		t.Errorf("active section = %q, want projects", m.ActiveSection())
	}
}

func TestManualScrollCancelsSmoothScroll(t *testing.T) {
	m, _ := newTestModel(t, nil, 120, 30)
	m, _ = update(m, keyRunes("6"))
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.scroller.Active() {
		t.Error("manual scroll should stop the animation")
	}
}

func TestMobileMenu(t *testing.T) {
	m, _ := newTestModel(t, nil, 60, 30)
	m, _ = update(m, keyRunes("m"))
	if !m.MenuOpen() {
		t.Fatal("m should open the menu")
	}
	if !strings.Contains(m.View(), "Projects") {
		t.Error("open menu should list the nav links")
	}
	m, _ = update(m, keyRunes("2"))
	if m.MenuOpen() {
		t.Error("jumping should close the menu")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, nil, 120, 30)
	_, cmd := update(m, keyRunes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestWheelScrollsByStep(t *testing.T) {
	m, _ := newTestModel(t, nil, 120, 30)
	m, _ = update(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.Scroll() != m.cfg.Scroll.Step {
		t.Errorf("scroll = %d, want %d", m.Scroll(), m.cfg.Scroll.Step)
	}
	m, _ = update(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if m.Scroll() != 0 {
		t.Errorf("scroll = %d, want 0", m.Scroll())
	}
}

func buttonsBlock(t *testing.T, m Model, section string) *page.Block {
	t.Helper()
	for i, b := range m.doc.Blocks() {
		if b.Kind == page.KindButtons && b.Section == section {
			return &m.doc.Blocks()[i]
		}
	}
	t.Fatalf("no buttons in %q", section)
	return nil
}

func TestClickButtonRipplesAndFollows(t *testing.T) {
	m, tr := newTestModel(t, nil, 120, 30)
	row := buttonsBlock(t, m, "about")
	m = scrollTo(m, row.Top-10)
	btn := row.Buttons[0]

	y := row.Top + btn.Y - m.Scroll()
	m, _ = update(m, tea.MouseMsg{X: row.Left + btn.X + 1, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if _, ok := m.ripples.Get(btn.ID, m.now); !ok {
		t.Error("click should start a ripple on the button")
	}
	if !tr.has("Button/Click/" + btn.Label) {
		t.Errorf("expected button click event, got %v", tr.events)
	}
	if !m.scroller.Active() {
		t.Error("an anchor button should start a smooth scroll")
	}
}

func TestHoverTiltsRevealedCard(t *testing.T) {
	m, _ := newTestModel(t, nil, 120, 30)
	card, _ := m.doc.Block(page.CardID("skills", 0))
	m = scrollTo(m, card.Top-5)
	if !m.Revealed(card.ID) {
		t.Fatal("card should be revealed once in view")
	}

	y := card.Top + 1 - m.Scroll()
	m, _ = update(m, tea.MouseMsg{X: card.Left + 1, Y: y, Action: tea.MouseActionMotion})
	if m.hover != card.ID || !m.tilt.Lifted() {
		t.Errorf("expected hover tilt on %q, got %q %+v", card.ID, m.hover, m.tilt)
	}

	m, _ = update(m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	if m.hover != "" || m.tilt.Lifted() {
		t.Error("leaving the card should reset the tilt")
	}
}

func TestImageLoadsOnReveal(t *testing.T) {
	site := content.Default()
	site.Sections[2].Cards[0].Image = "/nonexistent/shot.png"
	m, _ := newTestModel(t, site, 120, 30)
	id := page.ImageID("projects", 0)

	if m.st.loading[id] {
		t.Fatal("image below the fold should not load yet")
	}
	card, _ := m.doc.Block(page.CardID("projects", 0))
	m = scrollTo(m, card.Top-2)
	if !m.st.loading[id] {
		t.Fatal("image in view should start loading")
	}

	m, _ = update(m, ImageLoadedEvent{ID: id, Err: imageload.ErrDisabled})
	if m.st.loading[id] {
		t.Error("loading flag should clear")
	}
	if img, ok := m.st.images[id]; !ok || img.Err == nil {
		t.Error("failed image should be recorded so the card shows a notice")
	}
}

func TestLoadImageCmdWithoutLoader(t *testing.T) {
	msg := LoadImageCmd(nil, "img:x:0", "x.png", 10, 4)()
	ev, ok := msg.(ImageLoadedEvent)
	if !ok || ev.Err != imageload.ErrDisabled {
		t.Errorf("expected ErrDisabled event, got %#v", msg)
	}
}

func TestReloadKeepsRevealedBlocks(t *testing.T) {
	m, _ := newTestModel(t, nil, 120, 30)
	id := page.HeaderID("about")
	if !m.Revealed(id) {
		t.Fatal("precondition: header revealed")
	}
	before := m.ctrl.Len()

	m, _ = update(m, ContentReloadEvent{Site: content.Default()})
	if !m.Revealed(id) {
		t.Error("reload must not hide revealed blocks")
	}
	if m.ctrl.Len() > before {
		t.Errorf("revealed blocks were registered again: %d > %d regions", m.ctrl.Len(), before)
	}
	if m.Status() != "content reloaded" {
		t.Errorf("status = %q", m.Status())
	}
}

func TestReloadErrorKeepsSite(t *testing.T) {
	m, _ := newTestModel(t, nil, 120, 30)
	site := m.site
	m, _ = update(m, ContentReloadEvent{Err: content.ErrInvalid})
	if m.site != site {
		t.Error("failed reload replaced the site")
	}
	if !strings.HasPrefix(m.Status(), "reload failed") {
		t.Errorf("status = %q", m.Status())
	}
}

func TestThemeKeyCycles(t *testing.T) {
	m, _ := newTestModel(t, nil, 120, 30)
	before := m.th.Name
	_, cmd := update(m, keyRunes("t"))
	if cmd == nil {
		t.Fatal("t should emit a theme change")
	}
	m, _ = update(m, cmd())
	if m.th.Name == before {
		t.Errorf("theme did not change from %q", before)
	}
}

func TestViewFillsScreen(t *testing.T) {
	m, _ := newTestModel(t, nil, 100, 24)
	v := m.View()
	if n := strings.Count(v, "\n") + 1; n != 24 {
		t.Errorf("view has %d lines, want 24", n)
	}
	if !strings.Contains(v, content.Default().Name) {
		t.Error("view should show the site name")
	}

	m, _ = update(m, keyRunes("?"))
	if !strings.Contains(m.View(), "previous card") {
		t.Error("help overlay should list bindings")
	}
}

func TestViewBeforeLayout(t *testing.T) {
	m := New(Options{Site: content.Default()})
	if m.View() != "loading…" {
		t.Errorf("unexpected view before layout: %q", m.View())
	}
}
