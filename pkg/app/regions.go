package app

import (
	"errors"
	"strings"

	"github.com/sourabhakk/folio/pkg/content"
	"github.com/sourabhakk/folio/pkg/page"
	"github.com/sourabhakk/folio/pkg/viewport"
)

// NavbarRegion is the ID of the navbar's scroll-depth region.
const NavbarRegion = "navbar"

// registerRegions replaces the controller with one watching the current
// document. Blocks already revealed are not watched again, so a relayout
// or content reload never hides them.
func (m *Model) registerRegions() {
	st := m.st
	logger := m.logger.With("component", "viewport")
	m.ctrl = viewport.New(
		viewport.WithLogger(logger),
		viewport.WithErrorHandler(func(err error) {
			if errors.Is(err, viewport.ErrCallbackFailure) {
				st.callbackErr = err
			}
		}),
	)
	st.navScrolled = false
	st.active = ""
	st.toLoad = st.toLoad[:0]

	scroll := m.cfg.Scroll
	m.ctrl.Register(viewport.Region{
		ID:     NavbarRegion,
		Policy: viewport.ScrollDepth{Depth: scroll.NavbarDepth},
		OnChange: func(engaged bool) {
			st.navScrolled = engaged
		},
	})

	sections := []string{content.HeroID}
	for _, sec := range m.site.Sections {
		sections = append(sections, sec.ID)
	}
	for _, id := range sections {
		m.ctrl.Register(viewport.Region{
			ID:     "section:" + id,
			Bounds: m.doc.SectionBounds(id),
			Policy: viewport.ActiveSection{BandHeight: scroll.ActiveBand},
			OnChange: func(engaged bool) {
				switch {
				case engaged:
					st.active = id
				case st.active == id:
					st.active = ""
				}
			},
		})
	}

	reveal := viewport.OneShotReveal{Threshold: scroll.RevealThreshold, MarginBottom: scroll.RevealMargin}
	for _, b := range m.doc.Blocks() {
		if b.Kind != page.KindHeader && b.Kind != page.KindCard {
			continue
		}
		if b.Kind == page.KindCard && b.ImageRow >= 0 {
			m.registerImage(imageIDForCard(b.ID))
		}
		if st.revealed[b.ID] {
			continue
		}
		id := b.ID
		m.ctrl.Register(viewport.Region{
			ID:     id,
			Bounds: m.doc.Bounds(id),
			Policy: reveal,
			OnChange: func(bool) {
				st.revealed[id] = true
				if _, ok := st.fade[id]; !ok {
					st.fade[id] = 0
				}
			},
		})
	}
}

// registerImage watches an image for lazy loading. Images that are loaded
// or in flight are skipped.
func (m *Model) registerImage(id string) {
	st := m.st
	if _, done := st.images[id]; done || st.loading[id] {
		return
	}
	m.ctrl.Register(viewport.Region{
		ID:     id,
		Bounds: m.doc.Bounds(id),
		Policy: viewport.OneShotReveal{Threshold: 0, MarginBottom: m.cfg.Scroll.RevealMargin},
		OnChange: func(bool) {
			st.toLoad = append(st.toLoad, id)
		},
	})
}

func imageIDForCard(cardID string) string {
	return "img:" + strings.TrimPrefix(cardID, "card:")
}

func cardIDForImage(imageID string) string {
	return "card:" + strings.TrimPrefix(imageID, "img:")
}
