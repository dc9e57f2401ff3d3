// Package content defines the portfolio document folio renders and loads
// it from TOML or YAML.
package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure returned by Site.Validate.
var ErrInvalid = errors.New("content: invalid site")

// HeroID is the anchor of the hero block that precedes all sections.
const HeroID = "home"

// Animation names the reveal style of a section, mirroring the CSS classes
// fade-in, slide-in-left and slide-in-right.
type Animation string

const (
	FadeIn       Animation = "fade-in"
	SlideInLeft  Animation = "slide-in-left"
	SlideInRight Animation = "slide-in-right"
)

// CardKind selects the card's rendering and which interactions apply.
type CardKind string

const (
	KindCard    CardKind = "card"
	KindProject CardKind = "project"
	KindSkill   CardKind = "skill"
	KindMindset CardKind = "mindset"
)

// Site is the whole portfolio page.
type Site struct {
	Name     string    `toml:"name" yaml:"name"`
	Tagline  string    `toml:"tagline" yaml:"tagline"`
	Subtitle string    `toml:"subtitle" yaml:"subtitle"`
	Nav      []NavLink `toml:"nav" yaml:"nav"`
	Sections []Section `toml:"sections" yaml:"sections"`
	Footer   string    `toml:"footer" yaml:"footer"`
}

// NavLink is one navbar entry. Href is "#<section id>".
type NavLink struct {
	Label string `toml:"label" yaml:"label"`
	Href  string `toml:"href" yaml:"href"`
}

// Target returns the section ID an in-page href points to, or "".
func (l NavLink) Target() string {
	return AnchorTarget(l.Href)
}

// Section is a titled block of the page.
type Section struct {
	ID        string    `toml:"id" yaml:"id"`
	Title     string    `toml:"title" yaml:"title"`
	Body      string    `toml:"body" yaml:"body"` // markdown
	Animation Animation `toml:"animation" yaml:"animation"`
	Cards     []Card    `toml:"cards" yaml:"cards"`
	Buttons   []Button  `toml:"buttons" yaml:"buttons"`
}

// Card is a project, skill category, mindset item or generic card.
type Card struct {
	Kind  CardKind `toml:"kind" yaml:"kind"`
	Title string   `toml:"title" yaml:"title"`
	Body  string   `toml:"body" yaml:"body"` // markdown
	Link  string   `toml:"link" yaml:"link"`
	Tags  []string `toml:"tags" yaml:"tags"`
	Image string   `toml:"image" yaml:"image"` // local path, loaded lazily
}

// Focusable reports whether the card takes keyboard focus. Plain cards are
// decorative; projects, skills and mindset items are focusable.
func (c Card) Focusable() bool {
	return c.Kind != KindCard
}

// Button is a call-to-action. Href is "#<section id>" or a URL.
type Button struct {
	Label string `toml:"label" yaml:"label"`
	Href  string `toml:"href" yaml:"href"`
}

// AnchorTarget returns the id of an in-page "#id" href, or "" for
// anything else.
func AnchorTarget(href string) string {
	if strings.HasPrefix(href, "#") && len(href) > 1 {
		return href[1:]
	}
	return ""
}

// LoadFile reads a site from path. The format is chosen by extension:
// .toml, or .yaml/.yml. Relative image paths are resolved against the
// file's directory.
func LoadFile(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}

	var site Site
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &site); err != nil {
			return nil, fmt.Errorf("content: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &site); err != nil {
			return nil, fmt.Errorf("content: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("content: unsupported format %q (want .toml, .yaml or .yml)", ext)
	}

	site.normalize(filepath.Dir(path))
	return &site, nil
}

// normalize fills defaults and resolves relative image paths.
func (s *Site) normalize(baseDir string) {
	for i := range s.Sections {
		sec := &s.Sections[i]
		if sec.Animation == "" {
			sec.Animation = FadeIn
		}
		for j := range sec.Cards {
			c := &sec.Cards[j]
			if c.Kind == "" {
				c.Kind = KindCard
			}
			if c.Image != "" && baseDir != "" && !filepath.IsAbs(c.Image) {
				c.Image = filepath.Join(baseDir, c.Image)
			}
		}
	}
}

// Section returns the section with the given id.
func (s *Site) Section(id string) (Section, bool) {
	for _, sec := range s.Sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return Section{}, false
}

// Validate reports every structural problem at once. Each one is wrapped
// in ErrInvalid.
func (s *Site) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, fmt.Errorf("%w: name is empty", ErrInvalid))
	}

	seen := map[string]bool{HeroID: true}
	for i, sec := range s.Sections {
		if sec.ID == "" {
			errs = append(errs, fmt.Errorf("%w: section %d has no id", ErrInvalid, i))
			continue
		}
		if seen[sec.ID] {
			errs = append(errs, fmt.Errorf("%w: duplicate section id %q", ErrInvalid, sec.ID))
		}
		seen[sec.ID] = true

		switch sec.Animation {
		case "", FadeIn, SlideInLeft, SlideInRight:
		default:
			errs = append(errs, fmt.Errorf("%w: section %q: unknown animation %q", ErrInvalid, sec.ID, sec.Animation))
		}
		for _, c := range sec.Cards {
			switch c.Kind {
			case "", KindCard, KindProject, KindSkill, KindMindset:
			default:
				errs = append(errs, fmt.Errorf("%w: section %q: card %q has unknown kind %q", ErrInvalid, sec.ID, c.Title, c.Kind))
			}
		}
	}

	for _, link := range s.Nav {
		target := link.Target()
		if target == "" {
			continue
		}
		if !seen[target] {
			errs = append(errs, fmt.Errorf("%w: nav link %q points at missing section %q", ErrInvalid, link.Label, target))
		}
	}

	return errors.Join(errs...)
}
