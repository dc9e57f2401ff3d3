package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thOceanTheme(),
		thMidnightTheme(),
		thPaperTheme(),
		thDraculaTheme(),
	} {
		thRegister(t)
	}
}

// thOceanTheme is the default: slate background with blue/cyan accents.
func thOceanTheme() Theme {
	return Theme{
		Name:       "ocean",
		Background: "#0f172a",
		Foreground: "#e2e8f0",
		Dim:        "#94a3b8",
		Muted:      "#334155",

		Accent:  "#3b82f6",
		Accent2: "#06b6d4",
		Link:    "#60a5fa",

		NavBG:       "#0f172a",
		NavScrolled: "#1e293b",
		NavActive:   "#3b82f6",

		CardBorder: "#334155",
		CardFocus:  "#3b82f6",
		Tag:        "#06b6d4",

		Ripple: "#f8fafc",
	}
}

// thMidnightTheme is a darker, higher contrast variant.
func thMidnightTheme() Theme {
	return Theme{
		Name:       "midnight",
		Background: "#030712",
		Foreground: "#f9fafb",
		Dim:        "#9ca3af",
		Muted:      "#1f2937",

		Accent:  "#8b5cf6",
		Accent2: "#22d3ee",
		Link:    "#a78bfa",

		NavBG:       "#030712",
		NavScrolled: "#111827",
		NavActive:   "#8b5cf6",

		CardBorder: "#1f2937",
		CardFocus:  "#8b5cf6",
		Tag:        "#22d3ee",

		Ripple: "#ffffff",
	}
}

// thPaperTheme is a light theme for bright terminals.
func thPaperTheme() Theme {
	return Theme{
		Name:       "paper",
		Background: "#f8fafc",
		Foreground: "#0f172a",
		Dim:        "#475569",
		Muted:      "#cbd5e1",

		Accent:  "#2563eb",
		Accent2: "#0891b2",
		Link:    "#1d4ed8",

		NavBG:       "#f8fafc",
		NavScrolled: "#e2e8f0",
		NavActive:   "#2563eb",

		CardBorder: "#cbd5e1",
		CardFocus:  "#2563eb",
		Tag:        "#0891b2",

		Ripple: "#0f172a",
	}
}

// thDraculaTheme follows the Dracula palette.
func thDraculaTheme() Theme {
	return Theme{
		Name:       "dracula",
		Background: "#282a36",
		Foreground: "#f8f8f2",
		Dim:        "#6272a4",
		Muted:      "#44475a",

		Accent:  "#bd93f9",
		Accent2: "#8be9fd",
		Link:    "#ff79c6",

		NavBG:       "#282a36",
		NavScrolled: "#44475a",
		NavActive:   "#bd93f9",

		CardBorder: "#44475a",
		CardFocus:  "#bd93f9",
		Tag:        "#50fa7b",

		Ripple: "#f8f8f2",
	}
}
