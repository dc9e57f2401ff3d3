package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name   string       `toml:"name"`
	Base   thTOMLBase   `toml:"base"`
	Accent thTOMLAccent `toml:"accent"`
	Nav    thTOMLNav    `toml:"nav"`
	Card   thTOMLCard   `toml:"card"`
	Effect thTOMLEffect `toml:"effect"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Muted      string `toml:"muted"`
}

type thTOMLAccent struct {
	Primary   string `toml:"primary"`
	Secondary string `toml:"secondary"`
	Link      string `toml:"link"`
}

type thTOMLNav struct {
	Background string `toml:"background"`
	Scrolled   string `toml:"scrolled"`
	Active     string `toml:"active"`
}

type thTOMLCard struct {
	Border string `toml:"border"`
	Focus  string `toml:"focus"`
	Tag    string `toml:"tag"`
}

type thTOMLEffect struct {
	Ripple string `toml:"ripple"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Background: tt.Base.Background,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Muted:      tt.Base.Muted,

		Accent:  tt.Accent.Primary,
		Accent2: tt.Accent.Secondary,
		Link:    tt.Accent.Link,

		NavBG:       tt.Nav.Background,
		NavScrolled: tt.Nav.Scrolled,
		NavActive:   tt.Nav.Active,

		CardBorder: tt.Card.Border,
		CardFocus:  tt.Card.Focus,
		Tag:        tt.Card.Tag,

		Ripple: tt.Effect.Ripple,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// LoadFile reads a TOML theme from disk and registers it.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return Theme{}, err
	}
	thRegister(t)
	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Background: t.Background,
			Foreground: t.Foreground,
			Dim:        t.Dim,
			Muted:      t.Muted,
		},
		Accent: thTOMLAccent{
			Primary:   t.Accent,
			Secondary: t.Accent2,
			Link:      t.Link,
		},
		Nav: thTOMLNav{
			Background: t.NavBG,
			Scrolled:   t.NavScrolled,
			Active:     t.NavActive,
		},
		Card: thTOMLCard{
			Border: t.CardBorder,
			Focus:  t.CardFocus,
			Tag:    t.Tag,
		},
		Effect: thTOMLEffect{
			Ripple: t.Ripple,
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thColorFields lists every color field by its TOML-facing name.
func thColorFields(t Theme) map[string]string {
	return map[string]string{
		"base.background":  t.Background,
		"base.foreground":  t.Foreground,
		"base.dim":         t.Dim,
		"base.muted":       t.Muted,
		"accent.primary":   t.Accent,
		"accent.secondary": t.Accent2,
		"accent.link":      t.Link,
		"nav.background":   t.NavBG,
		"nav.scrolled":     t.NavScrolled,
		"nav.active":       t.NavActive,
		"card.border":      t.CardBorder,
		"card.focus":       t.CardFocus,
		"card.tag":         t.Tag,
		"effect.ripple":    t.Ripple,
	}
}

// thValidateTheme checks that the name is set and every color is #RRGGBB.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	for field, value := range thColorFields(t) {
		if value == "" {
			return fmt.Errorf("theme: missing required field %q", field)
		}
		if !thHexColorRegex.MatchString(value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", value, field)
		}
	}
	return nil
}
