package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sourabhakk/folio/pkg/effects"
	"github.com/sourabhakk/folio/pkg/page"
)

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		cmd = m.scrollBy(m.step())
	case msg.Button == tea.MouseButtonWheelUp:
		cmd = m.scrollBy(-m.step())
	case msg.Action == tea.MouseActionMotion:
		m.hoverAt(msg.X, msg.Y)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		cmd = m.clickAt(msg)
	}
	return m, cmd
}

func (m Model) step() int {
	return max(m.cfg.Scroll.Step, 1)
}

// docLine maps a screen row to a document line. Rows under the navbar or
// on the status line map to nothing.
func (m Model) docLine(y int) (int, bool) {
	if y < page.NavHeight || y >= m.viewportHeight() {
		return 0, false
	}
	return m.scroll + y, true
}

// hoverAt updates the tilted card under the pointer.
func (m *Model) hoverAt(x, y int) {
	m.hover, m.tilt = "", effects.Rest
	if !m.cfg.Effects.Tilt {
		return
	}
	line, ok := m.docLine(y)
	if !ok {
		return
	}
	hit, ok := m.doc.HitTest(x, line)
	if !ok || hit.Button != nil || !m.st.revealed[hit.Block.ID] {
		return
	}
	m.hover = hit.Block.ID
	m.tilt = effects.Tilt(hit.Block.Rect(), float64(x)+0.5, float64(line)+0.5)
}

func (m *Model) clickAt(msg tea.MouseMsg) tea.Cmd {
	if cmd, ok := m.clickNav(msg); ok {
		return cmd
	}
	line, ok := m.docLine(msg.Y)
	if !ok {
		return nil
	}
	hit, ok := m.doc.HitTest(msg.X, line)
	if !ok {
		return nil
	}
	if hit.Button != nil {
		if m.cfg.Effects.Ripple {
			local := hit.Button.Rect()
			x := float64(msg.X-hit.Block.Left) + 0.5
			y := float64(line-hit.Block.Top) + 0.5
			m.ripples.Start(hit.Button.ID, effects.NewRipple(local, x, y, m.now))
		}
		m.activateButton(hit.Button)
		return nil
	}
	m.FocusCard(hit.Block.ID)
	return m.activateCard(hit.Block.ID)
}

// clickNav handles clicks on the navbar zones: the mobile toggle and the
// section links.
func (m *Model) clickNav(msg tea.MouseMsg) (tea.Cmd, bool) {
	if m.zones == nil {
		return nil, false
	}
	if z := m.zones.Get(page.ToggleZone); z != nil && z.InBounds(msg) {
		m.menuOpen = !m.menuOpen
		return nil, true
	}
	for i := range m.site.Nav {
		if z := m.zones.Get(page.NavZone(i)); z != nil && z.InBounds(msg) {
			m.menuOpen = false
			return m.jumpNav(i), true
		}
	}
	return nil, false
}
