// Package app is the bubbletea host for the portfolio page. It owns the
// viewport controller, the laid-out document and all effect state, and
// translates terminal input into scrolling, focus and navigation.
package app

import (
	"time"

	"github.com/sourabhakk/folio/pkg/content"
)

// TickEvent drives one animation frame: fades, smooth scrolling, ripples
// and the hero orbs.
type TickEvent struct {
	Time time.Time
}

// TypeTickEvent reveals the next rune of the hero tagline.
type TypeTickEvent struct{}

// DebounceEvent fires after a burst of scroll or resize input. Only the
// event carrying the latest tag triggers an evaluation.
type DebounceEvent struct {
	Tag int
}

// ImageLoadedEvent carries a rendered card image, or the reason it could
// not be drawn.
type ImageLoadedEvent struct {
	ID    string
	Lines []string
	Err   error
}

// ContentReloadEvent carries a freshly loaded site after the content file
// changed on disk.
type ContentReloadEvent struct {
	Site *content.Site
	Err  error
}

// ThemeChangeEvent switches the active palette.
type ThemeChangeEvent struct {
	Theme string
}
