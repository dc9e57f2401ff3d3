package page

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/sourabhakk/folio/pkg/components"
)

// NavHeight is the number of lines the navbar covers at the top of the
// viewport.
const NavHeight = 2

// ToggleZone is the bubblezone ID of the mobile menu toggle.
const ToggleZone = "nav:toggle"

// NavZone returns the bubblezone ID of the nth nav link.
func NavZone(n int) string {
	return fmt.Sprintf("nav:%d", n)
}

// NavState is what the navbar reflects.
type NavState struct {
	Scrolled bool   // past the navbar depth
	Active   string // section ID whose link is highlighted
	MenuOpen bool
}

func mark(z *zone.Manager, id, s string) string {
	if z == nil {
		return s
	}
	return z.Mark(id, s)
}

// Nav renders the navbar, NavHeight lines of the document width. Links and
// the toggle are wrapped in zone markers when z is set; the caller must
// pass the final frame through z.Scan.
func (d *Document) Nav(ns NavState, z *zone.Manager) []string {
	s := d.styles
	bar := s.Nav
	if ns.Scrolled {
		bar = s.NavScrolled
	}
	brand := s.NavBrand.Render(d.site.Name)

	var right string
	if d.Mobile() {
		glyph := "☰"
		if ns.MenuOpen {
			glyph = "✕"
		}
		right = mark(z, ToggleZone, s.NavToggle.Render(glyph))
	} else {
		links := make([]string, len(d.site.Nav))
		for i, l := range d.site.Nav {
			links[i] = mark(z, NavZone(i), d.linkStyle(l.Target(), ns).Render(l.Label))
		}
		right = strings.Join(links, "  ")
	}

	gap := d.width - components.VisibleLen(brand) - components.VisibleLen(right) - 2
	line := " " + brand + strings.Repeat(" ", max(gap, 1)) + right + " "

	second := ""
	if ns.Scrolled {
		second = s.Dim.Render(strings.Repeat("─", d.width))
	}
	return []string{
		bar.Width(d.width).Render(components.Truncate(line, d.width)),
		bar.Width(d.width).Render(second),
	}
}

// Menu renders the open mobile menu, one link per line, right-aligned
// under the toggle. It returns nil when the menu is closed or the layout
// is not mobile.
func (d *Document) Menu(ns NavState, z *zone.Manager) []string {
	if !d.Mobile() || !ns.MenuOpen {
		return nil
	}
	w := 0
	for _, l := range d.site.Nav {
		w = max(w, components.VisibleLen(l.Label))
	}
	w += 4
	lines := make([]string, len(d.site.Nav))
	for i, l := range d.site.Nav {
		label := d.linkStyle(l.Target(), ns).Render(l.Label)
		lines[i] = mark(z, NavZone(i), d.styles.NavScrolled.Render(components.PadRight("  "+label, w)))
	}
	return lines
}

func (d *Document) linkStyle(target string, ns NavState) lipgloss.Style {
	if target != "" && target == ns.Active {
		return d.styles.NavLinkActive
	}
	return d.styles.NavLink
}

// Overlay draws over on top of base, right-aligned within width.
func Overlay(base, over []string, width int) []string {
	out := make([]string, len(base))
	copy(out, base)
	for i, o := range over {
		if i >= len(out) {
			break
		}
		ow := components.VisibleLen(o)
		left := components.Truncate(out[i], max(width-ow, 0))
		out[i] = components.PadRight(left, width-ow) + o
	}
	return out
}
