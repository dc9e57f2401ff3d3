package imageload

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shot.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseProtocol(t *testing.T) {
	tests := []struct {
		in      string
		want    Protocol
		wantErr bool
	}{
		{in: "halfblocks", want: ProtocolHalfblocks},
		{in: "kitty", want: ProtocolKitty},
		{in: "ITERM2", want: ProtocolITerm2},
		{in: "sixel", want: ProtocolSixel},
		{in: "none", want: ProtocolNone},
		{in: "bogus", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseProtocol(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseProtocol(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseProtocol(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func clearTermEnv(t *testing.T) {
	for _, k := range []string{"TERM_PROGRAM", "TERM", "KITTY_WINDOW_ID", "ITERM_SESSION_ID", "LC_TERMINAL", "SSH_TTY", "SSH_CONNECTION", "SSH_CLIENT"} {
		t.Setenv(k, "")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Protocol
	}{
		{name: "ghostty", env: map[string]string{"TERM_PROGRAM": "ghostty"}, want: ProtocolKitty},
		{name: "kitty term", env: map[string]string{"TERM": "xterm-kitty"}, want: ProtocolKitty},
		{name: "kitty window", env: map[string]string{"KITTY_WINDOW_ID": "1"}, want: ProtocolKitty},
		{name: "iterm", env: map[string]string{"TERM_PROGRAM": "iTerm.app"}, want: ProtocolITerm2},
		{name: "iterm over lc", env: map[string]string{"LC_TERMINAL": "iTerm2"}, want: ProtocolITerm2},
		{name: "ssh downgrades", env: map[string]string{"TERM_PROGRAM": "kitty", "SSH_TTY": "/dev/pts/1"}, want: ProtocolHalfblocks},
		{name: "generic", env: map[string]string{"TERM": "xterm-256color"}, want: ProtocolHalfblocks},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTermEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := Detect(); got != tt.want {
				t.Errorf("Detect() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHalfblocksDimensions(t *testing.T) {
	lines := Halfblocks(solid(6, 5, color.NRGBA{R: 255, A: 255}), 4)
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	for i := 0; i < 3; i++ {
		if w := ansi.StringWidth(lines[i]); w != 6 {
			t.Errorf("line %d width %d, want 6", i, w)
		}
	}
	if lines[3] != "" {
		t.Errorf("padding line should be empty, got %q", lines[3])
	}
	if !strings.Contains(lines[0], "38;2;255;0;0") {
		t.Errorf("expected red foreground in %q", lines[0])
	}
}

func TestHalfblocksTransparent(t *testing.T) {
	lines := Halfblocks(solid(2, 2, color.NRGBA{}), 1)
	if ansi.Strip(lines[0]) != "  " {
		t.Errorf("transparent pixels should render as spaces: %q", ansi.Strip(lines[0]))
	}
}

func TestFitDoesNotEnlarge(t *testing.T) {
	small := solid(4, 4, color.NRGBA{A: 255})
	if got := Fit(small, 100, 100); got.Bounds().Dx() != 4 {
		t.Errorf("small image resized to %v", got.Bounds())
	}
	big := Fit(solid(200, 100, color.NRGBA{A: 255}), 50, 50)
	if b := big.Bounds(); b.Dx() != 50 || b.Dy() != 25 {
		t.Errorf("fit to 50x50 gave %dx%d, want 50x25", b.Dx(), b.Dy())
	}
}

func TestLoadRendersAndCaches(t *testing.T) {
	path := writePNG(t, solid(40, 40, color.NRGBA{G: 200, A: 255}))
	cache := NewCache(1)
	l := NewLoader(ProtocolHalfblocks, cache, nil)

	lines, err := l.Load(path, 10, 4)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > 10 {
			t.Errorf("line wider than target: %d", w)
		}
	}

	if _, err := l.Load(path, 10, 4); err != nil {
		t.Fatal(err)
	}
	if s := cache.Stats(); s.Hits != 1 || s.Misses != 1 || s.Entries != 1 {
		t.Errorf("unexpected cache stats %+v", s)
	}
}

func TestLoadErrors(t *testing.T) {
	l := NewLoader(ProtocolHalfblocks, nil, nil)
	if _, err := l.Load(filepath.Join(t.TempDir(), "missing.png"), 10, 4); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Load(bad, 10, 4); err == nil {
		t.Error("expected decode error")
	}

	off := NewLoader(ProtocolNone, nil, nil)
	if _, err := off.Load(bad, 10, 4); !errors.Is(err, ErrDisabled) {
		t.Errorf("expected ErrDisabled, got %v", err)
	}
}

func TestCacheEvictsLeastRecent(t *testing.T) {
	c := newCacheBytes(10)
	a := cacheKey{path: "a"}
	b := cacheKey{path: "b"}
	d := cacheKey{path: "d"}

	c.put(a, []string{"aaaa"})
	c.put(b, []string{"bbbb"})
	c.get(a) // a is now most recent
	c.put(d, []string{"dddd"})

	if _, ok := c.get(b); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.get(a); !ok {
		t.Error("a should still be cached")
	}
	if s := c.Stats(); s.Evictions != 1 || s.SizeBytes != 8 {
		t.Errorf("unexpected stats %+v", s)
	}
}

func TestCacheKeepsOversizedNewest(t *testing.T) {
	c := newCacheBytes(4)
	c.put(cacheKey{path: "big"}, []string{"0123456789"})
	if _, ok := c.get(cacheKey{path: "big"}); !ok {
		t.Error("a single oversized entry should be kept")
	}
}
