package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/sourabhakk/folio/pkg/content"
	"github.com/sourabhakk/folio/pkg/debounce"
)

// reloadWait coalesces the burst of events editors produce on save.
const reloadWait = 100 * time.Millisecond

// LoadContent reads and validates a content file.
func LoadContent(path string) (*content.Site, error) {
	site, err := content.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return site, nil
}

// Watch sends a ContentReloadEvent whenever the file at path changes,
// until ctx is cancelled. The parent directory is watched so editors that
// save by rename are still seen.
func Watch(ctx context.Context, path string, send func(tea.Msg), logger *slog.Logger) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", path, err)
	}

	reload := debounce.Func(func() {
		site, err := LoadContent(abs)
		send(ContentReloadEvent{Site: site, Err: err})
	}, reloadWait)

	go func() {
		defer w.Close()
		defer reload.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
					logger.Debug("content changed", "path", abs, "op", ev.Op.String())
					reload.Call()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("content watcher error", "err", err)
			}
		}
	}()
	return nil
}
