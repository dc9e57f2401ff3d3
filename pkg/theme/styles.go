package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Nav           lipgloss.Style
	NavScrolled   lipgloss.Style
	NavBrand      lipgloss.Style
	NavLink       lipgloss.Style
	NavLinkActive lipgloss.Style
	NavToggle     lipgloss.Style

	HeroTitle    lipgloss.Style
	HeroTagline  lipgloss.Style
	SectionTitle lipgloss.Style
	Body         lipgloss.Style
	Strong       lipgloss.Style
	Emphasis     lipgloss.Style
	Code         lipgloss.Style
	Link         lipgloss.Style
	Dim          lipgloss.Style
	Muted        lipgloss.Style

	Card        lipgloss.Style
	CardFocused lipgloss.Style
	CardTitle   lipgloss.Style
	Tag         lipgloss.Style

	Button  lipgloss.Style
	Ripple  lipgloss.Style
	Footer  lipgloss.Style
	Status  lipgloss.Style
	HelpKey lipgloss.Style
}

// NewStyles builds the style set for t.
func NewStyles(t Theme) Styles {
	fg := lipgloss.Color(t.Foreground)
	accent := lipgloss.Color(t.Accent)

	return Styles{
		Nav:           lipgloss.NewStyle().Foreground(fg),
		NavScrolled:   lipgloss.NewStyle().Foreground(fg).Background(lipgloss.Color(t.NavScrolled)),
		NavBrand:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		NavLink:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim)),
		NavLinkActive: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color(t.NavActive)),
		NavToggle:     lipgloss.NewStyle().Bold(true).Foreground(accent),

		HeroTitle:    lipgloss.NewStyle().Bold(true).Foreground(fg),
		HeroTagline:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent2)),
		SectionTitle: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Body:         lipgloss.NewStyle().Foreground(fg),
		Strong:       lipgloss.NewStyle().Bold(true).Foreground(fg),
		Emphasis:     lipgloss.NewStyle().Italic(true).Foreground(fg),
		Code:         lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent2)),
		Link:         lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color(t.Link)),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim)),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),

		Card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(t.CardBorder)).Padding(0, 1),
		CardFocused: lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color(t.CardFocus)).Padding(0, 1),
		CardTitle:   lipgloss.NewStyle().Bold(true).Foreground(fg),
		Tag:         lipgloss.NewStyle().Foreground(lipgloss.Color(t.Tag)),

		Button:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Background)).Background(accent).Padding(0, 2),
		Ripple:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Background)).Background(lipgloss.Color(t.Ripple)).Padding(0, 2),
		Footer:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim)),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim)),
		HelpKey: lipgloss.NewStyle().Bold(true).Foreground(accent),
	}
}

// Fade returns the style for a block part way through its reveal. Level 1
// is muted, level 2 is dim and anything higher is body text. Hidden blocks
// (level 0) are not drawn at all.
func (s Styles) Fade(level int) lipgloss.Style {
	switch {
	case level <= 1:
		return s.Muted
	case level == 2:
		return s.Dim
	default:
		return s.Body
	}
}
