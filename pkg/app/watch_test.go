package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sourabhakk/folio/pkg/content"
)

const siteYAML = `name: Ada
nav:
  - label: About
    href: "#about"
sections:
  - id: about
    title: About
    body: hello
`

func TestLoadContent(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "site.yaml")
	if err := os.WriteFile(good, []byte(siteYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	site, err := LoadContent(good)
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	if site.Name != "Ada" || len(site.Sections) != 1 {
		t.Errorf("unexpected site: %+v", site)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("name: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadContent(bad); !errors.Is(err, content.ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestWatchSendsReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	if err := os.WriteFile(path, []byte(siteYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan tea.Msg, 4)
	send := func(msg tea.Msg) { got <- msg }
	if err := Watch(ctx, path, send, slog.New(slog.DiscardHandler)); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	updated := []byte(siteYAML[:len("name: ")] + "Grace" + siteYAML[len("name: Ada"):])
	if err := os.WriteFile(path, updated, 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case msg := <-got:
		ev, ok := msg.(ContentReloadEvent)
		if !ok {
			t.Fatalf("expected ContentReloadEvent, got %T", msg)
		}
		if ev.Err != nil {
			t.Fatalf("reload error: %v", ev.Err)
		}
		if ev.Site.Name != "Grace" {
			t.Errorf("reloaded name = %q, want Grace", ev.Site.Name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload event")
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), "/nonexistent/dir/site.yaml", func(tea.Msg) {}, slog.New(slog.DiscardHandler))
	if err == nil {
		t.Error("expected an error watching a missing directory")
	}
}
