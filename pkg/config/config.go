// Package config loads folio's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration for folio.
type Config struct {
	General GeneralConfig `toml:"general"`
	Scroll  ScrollConfig  `toml:"scroll"`
	Effects EffectsConfig `toml:"effects"`
	Image   ImageConfig   `toml:"image"`
	Theme   ThemeConfig   `toml:"theme"`
	Layout  LayoutConfig  `toml:"layout"`
}

// GeneralConfig holds paths and logging settings.
type GeneralConfig struct {
	Content  string `toml:"content"`   // portfolio document (.toml/.yaml); empty = built-in demo
	LogFile  string `toml:"log_file"`  // the TUI owns the terminal, so logs go here
	LogLevel string `toml:"log_level"` // debug, info, warn, error
}

// ScrollConfig tunes the viewport controller. Distances are in terminal
// lines.
type ScrollConfig struct {
	NavbarDepth     float64  `toml:"navbar_depth"`     // navbar turns opaque past this scroll depth
	RevealThreshold float64  `toml:"reveal_threshold"` // fraction of a block that must be visible
	RevealMargin    float64  `toml:"reveal_margin"`    // reveal this many lines before the bottom edge
	ActiveBand      float64  `toml:"active_band"`      // 0 = centre line only
	Debounce        Duration `toml:"debounce"`
	Step            int      `toml:"step"` // lines per wheel notch
}

// EffectsConfig toggles the decorative effects.
type EffectsConfig struct {
	Orbs        int      `toml:"orbs"`
	Typing      bool     `toml:"typing"`
	TypingSpeed Duration `toml:"typing_speed"`
	Ripple      bool     `toml:"ripple"`
	Tilt        bool     `toml:"tilt"`
	Frame       Duration `toml:"frame"` // animation tick interval
}

// ImageConfig controls lazy image rendering.
type ImageConfig struct {
	Protocol   string `toml:"protocol"` // auto, halfblocks, kitty, iterm2, sixel, none
	MaxCacheMB int    `toml:"max_cache_mb"`
}

// ThemeConfig selects a palette by name, or loads one from File.
type ThemeConfig struct {
	Name string `toml:"name"`
	File string `toml:"file"`
}

// LayoutConfig controls page geometry.
type LayoutConfig struct {
	MobileBreakpoint int `toml:"mobile_breakpoint"`
	HeroHeight       int `toml:"hero_height"`
	TwoColumnMin     int `toml:"two_column_min"`
}

var validProtocols = []string{"auto", "halfblocks", "kitty", "iterm2", "sixel", "none"}

// Validate checks value ranges and returns every problem found.
func (c *Config) Validate() error {
	var errs []error

	if c.Scroll.RevealThreshold < 0 || c.Scroll.RevealThreshold > 1 {
		errs = append(errs, fmt.Errorf("scroll.reveal_threshold must be in [0,1], got %g", c.Scroll.RevealThreshold))
	}
	if c.Scroll.NavbarDepth < 0 {
		errs = append(errs, fmt.Errorf("scroll.navbar_depth must be >= 0, got %g", c.Scroll.NavbarDepth))
	}
	if c.Scroll.RevealMargin < 0 {
		errs = append(errs, fmt.Errorf("scroll.reveal_margin must be >= 0, got %g", c.Scroll.RevealMargin))
	}
	if c.Scroll.ActiveBand < 0 {
		errs = append(errs, fmt.Errorf("scroll.active_band must be >= 0, got %g", c.Scroll.ActiveBand))
	}
	if c.Scroll.Step <= 0 {
		errs = append(errs, fmt.Errorf("scroll.step must be > 0, got %d", c.Scroll.Step))
	}
	if c.Effects.Orbs < 0 || c.Effects.Orbs > 16 {
		errs = append(errs, fmt.Errorf("effects.orbs must be in [0,16], got %d", c.Effects.Orbs))
	}
	if !isValidProtocol(c.Image.Protocol) {
		errs = append(errs, fmt.Errorf("image.protocol %q is not one of %s", c.Image.Protocol, strings.Join(validProtocols, ", ")))
	}
	if c.Layout.HeroHeight < 3 {
		errs = append(errs, fmt.Errorf("layout.hero_height must be >= 3, got %d", c.Layout.HeroHeight))
	}

	return errors.Join(errs...)
}

func isValidProtocol(p string) bool {
	for _, v := range validProtocols {
		if strings.EqualFold(p, v) {
			return true
		}
	}
	return false
}

// Duration is a time.Duration spelled as a Go duration string in TOML,
// e.g. debounce = "10ms". An empty string means zero.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		d.Duration = 0
		return nil
	}
	v, err := time.ParseDuration(string(text))
	switch {
	case err != nil:
		return fmt.Errorf("config: duration %q: %w", text, err)
	case v < 0:
		return fmt.Errorf("config: duration %q is negative", text)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
