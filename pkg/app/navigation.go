package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sourabhakk/folio/pkg/analytics"
	"github.com/sourabhakk/folio/pkg/content"
	"github.com/sourabhakk/folio/pkg/effects"
	"github.com/sourabhakk/folio/pkg/page"
	"github.com/sourabhakk/folio/pkg/theme"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	if key.Matches(msg, k.Quit) {
		return m, tea.Quit
	}
	if !m.ready {
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, k.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, k.Escape):
		switch {
		case m.showHelp:
			m.showHelp = false
		case m.menuOpen:
			m.menuOpen = false
		default:
			m.focus = -1
		}
	case key.Matches(msg, k.Down):
		cmd = m.scrollBy(1)
	case key.Matches(msg, k.Up):
		cmd = m.scrollBy(-1)
	case key.Matches(msg, k.PageDown):
		cmd = m.scrollBy(m.viewportHeight() - page.NavHeight)
	case key.Matches(msg, k.PageUp):
		cmd = m.scrollBy(-(m.viewportHeight() - page.NavHeight))
	case key.Matches(msg, k.Top):
		cmd = m.scrollTo(0)
	case key.Matches(msg, k.Bottom):
		cmd = m.scrollTo(m.maxScroll())
	case key.Matches(msg, k.Next):
		m.CycleFocusForward()
		cmd = m.revealFocused()
	case key.Matches(msg, k.Prev):
		m.CycleFocusBackward()
		cmd = m.revealFocused()
	case key.Matches(msg, k.Activate):
		if id := m.FocusedID(); id != "" {
			cmd = m.activateCard(id)
		}
	case key.Matches(msg, k.Menu):
		m.menuOpen = !m.menuOpen
	case key.Matches(msg, k.Jump):
		n := int(msg.String()[0] - '1')
		if n < len(m.site.Nav) {
			m.menuOpen = false
			cmd = m.jumpNav(n)
		}
	case key.Matches(msg, k.Theme):
		names := theme.Names()
		next := names[0]
		for i, name := range names {
			if name == m.th.Name {
				next = names[(i+1)%len(names)]
			}
		}
		cmd = func() tea.Msg { return ThemeChangeEvent{Theme: next} }
	}
	return m, cmd
}

// scrollBy moves the viewport by delta lines, cancelling any smooth
// scroll in progress.
func (m *Model) scrollBy(delta int) tea.Cmd {
	return m.scrollTo(m.scroll + delta)
}

func (m *Model) scrollTo(line int) tea.Cmd {
	m.scroller.Stop()
	line = clamp(line, 0, m.maxScroll())
	if line == m.scroll {
		return nil
	}
	m.scroll = line
	return m.scheduleEvaluate()
}

// smoothScrollTo animates toward a section anchor, leaving it just below
// the navbar.
func (m *Model) smoothScrollTo(section string) bool {
	top := 0
	if section != content.HeroID {
		t, ok := m.doc.SectionTop(section)
		if !ok {
			return false
		}
		top = t
	}
	target := effects.AnchorOffset(top, page.NavHeight, m.maxScroll())
	m.scroller.ScrollTo(float64(m.scroll), float64(target))
	return true
}

// jumpNav follows the nth nav link.
func (m *Model) jumpNav(n int) tea.Cmd {
	link := m.site.Nav[n]
	target := link.Target()
	if target == "" {
		m.status = link.Href
		return nil
	}
	if !m.smoothScrollTo(target) {
		m.status = "no section " + target
		return nil
	}
	m.tracker.Event(analytics.CategoryNav, analytics.ActionJump, target)
	return nil
}

// activateCard follows a card's link. In-page anchors scroll; anything
// else is shown in the status line.
func (m *Model) activateCard(id string) tea.Cmd {
	b, ok := m.doc.Block(id)
	if !ok || b.Card == nil {
		return nil
	}
	c := b.Card
	if c.Kind == content.KindProject {
		m.tracker.Event(analytics.CategoryProjects, analytics.ActionClick, c.Title)
	}
	m.follow(c.Link)
	return nil
}

// activateButton follows a button's href.
func (m *Model) activateButton(hit *page.ButtonHit) {
	m.tracker.Event(analytics.CategoryButton, analytics.ActionClick, hit.Label)
	m.follow(hit.Href)
}

func (m *Model) follow(href string) {
	if href == "" {
		return
	}
	if target := content.AnchorTarget(href); target != "" {
		if !m.smoothScrollTo(target) {
			m.status = "no section " + target
		}
		return
	}
	m.status = "open " + href
}

// CycleFocusForward moves focus to the next focusable card, wrapping
// after the last.
func (m *Model) CycleFocusForward() {
	if len(m.focusables) == 0 {
		return
	}
	m.focus = (m.focus + 1) % len(m.focusables)
}

// CycleFocusBackward moves focus to the previous focusable card, wrapping
// before the first.
func (m *Model) CycleFocusBackward() {
	if len(m.focusables) == 0 {
		return
	}
	if m.focus < 0 {
		m.focus = 0
	}
	m.focus = (m.focus - 1 + len(m.focusables)) % len(m.focusables)
}

// FocusCard sets focus to the card with id. Unknown IDs leave focus
// unchanged.
func (m *Model) FocusCard(id string) {
	for i, f := range m.focusables {
		if f == id {
			m.focus = i
			return
		}
	}
}

// refreshFocusables rebuilds the tab order after layout, keeping the
// focused card when it still exists.
func (m *Model) refreshFocusables() {
	prev := m.FocusedID()
	m.focusables = m.doc.Focusables()
	m.focus = -1
	if prev != "" {
		m.FocusCard(prev)
	}
}

// revealFocused scrolls the focused card fully into view below the
// navbar.
func (m *Model) revealFocused() tea.Cmd {
	b, ok := m.doc.Block(m.FocusedID())
	if !ok {
		return nil
	}
	vh := m.viewportHeight()
	switch {
	case b.Top-page.NavHeight < m.scroll:
		return m.scrollTo(b.Top - page.NavHeight)
	case b.Bottom() > m.scroll+vh:
		return m.scrollTo(b.Bottom() - vh)
	}
	return nil
}
