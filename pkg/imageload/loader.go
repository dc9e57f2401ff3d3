// Package imageload decodes, fits and renders card images for the
// terminal, caching the rendered lines.
package imageload

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/blacktop/go-termimg"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// ErrDisabled is returned by Load when the protocol is none.
var ErrDisabled = errors.New("imageload: images disabled")

// Loader turns image files into terminal lines.
type Loader struct {
	protocol     Protocol
	cache        *Cache
	cellW, cellH int
	logger       *slog.Logger
}

// NewLoader creates a loader for protocol p. A nil cache disables caching
// and a nil logger discards.
func NewLoader(p Protocol, cache *Cache, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w, h := defaultCellW, defaultCellH
	if p != ProtocolHalfblocks && p != ProtocolNone {
		w, h = CellSize()
	}
	return &Loader{protocol: p, cache: cache, cellW: w, cellH: h, logger: logger}
}

// Protocol returns the active protocol.
func (l *Loader) Protocol() Protocol {
	return l.protocol
}

// Load renders the image at path into exactly rows lines no wider than
// width cells.
func (l *Loader) Load(path string, width, rows int) ([]string, error) {
	if l.protocol == ProtocolNone {
		return nil, ErrDisabled
	}
	if width <= 0 || rows <= 0 {
		return nil, fmt.Errorf("imageload: bad target %dx%d", width, rows)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("imageload: %w", err)
	}

	key := cacheKey{path: path, modTime: info.ModTime(), width: width, rows: rows, protocol: l.protocol}
	if l.cache != nil {
		if lines, ok := l.cache.get(key); ok {
			return lines, nil
		}
	}

	start := time.Now()
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("imageload: decode %s: %w", path, err)
	}
	lines, err := l.render(img, width, rows)
	if err != nil {
		return nil, fmt.Errorf("imageload: render %s: %w", path, err)
	}
	l.logger.Debug("image rendered", "path", path, "protocol", l.protocol, "cells", fmt.Sprintf("%dx%d", width, rows), "took", time.Since(start))

	if l.cache != nil {
		l.cache.put(key, lines)
	}
	return lines, nil
}

func (l *Loader) render(img image.Image, width, rows int) ([]string, error) {
	switch l.protocol {
	case ProtocolKitty:
		return l.renderTermimg(img, termimg.Kitty, width, rows)
	case ProtocolITerm2:
		return l.renderTermimg(img, termimg.ITerm2, width, rows)
	case ProtocolSixel:
		return l.renderTermimg(img, termimg.Sixel, width, rows)
	default:
		return Halfblocks(Fit(img, width, rows*2), rows), nil
	}
}

// renderTermimg emits the graphics escape on the first line and leaves the
// rest blank for the image to cover.
func (l *Loader) renderTermimg(img image.Image, proto termimg.Protocol, width, rows int) ([]string, error) {
	fitted := Fit(img, width*l.cellW, rows*l.cellH)
	ti := termimg.New(fitted)
	if ti == nil {
		return nil, errors.New("go-termimg: could not wrap image")
	}
	out, err := ti.Protocol(proto).Size(width, rows).Scale(termimg.ScaleFit).Render()
	if err != nil {
		return nil, err
	}
	lines := make([]string, rows)
	lines[0] = out
	return lines, nil
}

// Fit scales img down to fit inside w x h pixels, keeping its aspect
// ratio. Images that already fit are not enlarged.
func Fit(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}
	return imaging.Fit(img, max(w, 1), max(h, 1), imaging.Lanczos)
}

// Halfblocks draws img with upper half blocks, two pixel rows per line,
// and pads the result to rows lines.
func Halfblocks(img image.Image, rows int) []string {
	src := imaging.Clone(img)
	b := src.Bounds()
	lines := make([]string, 0, rows)

	for y := b.Min.Y; y < b.Max.Y && len(lines) < rows; y += 2 {
		var sb strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			top := src.NRGBAAt(x, y)
			var bot color.NRGBA
			if y+1 < b.Max.Y {
				bot = src.NRGBAAt(x, y+1)
			}
			switch {
			case top.A == 0 && bot.A == 0:
				sb.WriteString("\x1b[0m ")
			case top.A == 0:
				fmt.Fprintf(&sb, "\x1b[49;38;2;%d;%d;%dm▄", bot.R, bot.G, bot.B)
			case bot.A == 0:
				fmt.Fprintf(&sb, "\x1b[49;38;2;%d;%d;%dm▀", top.R, top.G, top.B)
			default:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%d;48;2;%d;%d;%dm▀", top.R, top.G, top.B, bot.R, bot.G, bot.B)
			}
		}
		sb.WriteString("\x1b[0m")
		lines = append(lines, sb.String())
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return lines
}
