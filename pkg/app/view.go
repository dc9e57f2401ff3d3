package app

import (
	"fmt"
	"strings"

	"github.com/sourabhakk/folio/pkg/components"
	"github.com/sourabhakk/folio/pkg/page"
)

// View renders the navbar over the visible page window, the open menu or
// help overlay, and the status line.
func (m Model) View() string {
	if !m.ready || m.doc == nil {
		return "loading…"
	}
	vh := m.viewportHeight()
	lines := m.doc.View(m.scroll, vh, m.pageState())

	nav := m.doc.Nav(page.NavState{
		Scrolled: m.st.navScrolled,
		Active:   m.st.active,
		MenuOpen: m.menuOpen,
	}, m.zones)
	for i := 0; i < len(nav) && i < len(lines); i++ {
		lines[i] = nav[i]
	}
	if menu := m.doc.Menu(page.NavState{Active: m.st.active, MenuOpen: m.menuOpen}, m.zones); len(menu) > 0 && len(lines) > page.NavHeight {
		copy(lines[page.NavHeight:], page.Overlay(lines[page.NavHeight:], menu, m.width))
	}
	if m.showHelp {
		m.help.ShowAll = true
		m.help.Width = m.width
		helpLines := strings.Split(m.help.View(m.keys), "\n")
		start := max(len(lines)-len(helpLines), page.NavHeight)
		for i, h := range helpLines {
			if start+i < len(lines) {
				lines[start+i] = components.PadRight(" "+h, m.width)
			}
		}
	}

	out := strings.Join(append(lines, m.statusLine()), "\n")
	if m.zones != nil {
		return m.zones.Scan(out)
	}
	return out
}

func (m Model) pageState() page.State {
	st := page.State{
		Fade:    m.st.fade,
		Focus:   m.FocusedID(),
		Hover:   m.hover,
		Tilt:    m.tilt,
		Ripples: m.ripples,
		Now:     m.now,
		Images:  m.st.images,
		Orbs:    m.orbs,
		Elapsed: m.now.Sub(m.start),
	}
	if m.typewriter != nil {
		s := m.typewriter.String()
		st.Tagline = &s
	}
	return st
}

func (m Model) statusLine() string {
	s := m.doc.Styles()
	left := m.status
	if left == "" {
		m.help.ShowAll = false
		m.help.Width = m.width - 8
		left = m.help.View(m.keys)
	}
	pct := 100
	if ms := m.maxScroll(); ms > 0 {
		pct = m.scroll * 100 / ms
	}
	right := fmt.Sprintf("%3d%%", pct)
	left = components.TruncateWithTail(left, m.width-len(right)-2, "…")
	gap := max(m.width-components.VisibleLen(left)-len(right)-1, 1)
	return s.Status.Render(" " + left + strings.Repeat(" ", gap) + right)
}
