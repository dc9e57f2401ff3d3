// Package analytics records page views and interaction events. The only
// backend is the structured log.
package analytics

import (
	"log/slog"

	"github.com/google/uuid"
)

// Event categories and actions tracked by the page.
const (
	CategoryProjects = "Projects"
	CategoryNav      = "Nav"
	CategoryButton   = "Button"

	ActionClick = "Click"
	ActionJump  = "Jump"
)

// Tracker receives analytics events.
type Tracker interface {
	PageView()
	Event(category, action, label string)
}

// LogTracker writes each event as a structured log record tagged with a
// per-run session ID.
type LogTracker struct {
	logger  *slog.Logger
	session string
}

// NewLogTracker creates a tracker with a fresh session ID.
func NewLogTracker(logger *slog.Logger) *LogTracker {
	if logger == nil {
		logger = slog.Default()
	}
	session := uuid.NewString()
	return &LogTracker{
		logger:  logger.With("component", "analytics", "session", session),
		session: session,
	}
}

// Session returns the session ID attached to every record.
func (t *LogTracker) Session() string {
	return t.session
}

// PageView records that the page was opened.
func (t *LogTracker) PageView() {
	t.logger.Info("page view")
}

// Event records one interaction.
func (t *LogTracker) Event(category, action, label string) {
	t.logger.Info("event", "category", category, "action", action, "label", label)
}

// Nop discards every event.
type Nop struct{}

func (Nop) PageView()            {}
func (Nop) Event(_, _, _ string) {}
