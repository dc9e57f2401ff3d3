package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sourabhakk/folio/pkg/analytics"
	"github.com/sourabhakk/folio/pkg/imageload"
)

// TickCmd sends a TickEvent after d.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}

// TypeTickCmd sends a TypeTickEvent after d.
func TypeTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TypeTickEvent{}
	})
}

// DebounceCmd sends DebounceEvent{Tag: tag} after wait. The receiver
// compares the tag against its latest to drop superseded events.
func DebounceCmd(tag int, wait time.Duration) tea.Cmd {
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return DebounceEvent{Tag: tag}
	})
}

// LoadImageCmd renders the image at path off the update loop and
// delivers the result as an ImageLoadedEvent.
func LoadImageCmd(l *imageload.Loader, id, path string, width, rows int) tea.Cmd {
	return func() tea.Msg {
		if l == nil {
			return ImageLoadedEvent{ID: id, Err: imageload.ErrDisabled}
		}
		lines, err := l.Load(path, width, rows)
		return ImageLoadedEvent{ID: id, Lines: lines, Err: err}
	}
}

// PageViewCmd records the page view.
func PageViewCmd(t analytics.Tracker) tea.Cmd {
	return func() tea.Msg {
		t.PageView()
		return nil
	}
}
