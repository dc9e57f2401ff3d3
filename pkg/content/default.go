package content

// Default returns the built-in demo portfolio used when no content file is
// configured.
func Default() *Site {
	s := &Site{
		Name:     "Sourabha K",
		Tagline:  "Software engineer building reliable systems",
		Subtitle: "Backend, infrastructure and the occasional terminal toy.",
		Nav: []NavLink{
			{Label: "Home", Href: "#home"},
			{Label: "About", Href: "#about"},
			{Label: "Skills", Href: "#skills"},
			{Label: "Projects", Href: "#projects"},
			{Label: "Mindset", Href: "#mindset"},
			{Label: "Contact", Href: "#contact"},
		},
		Sections: []Section{
			{
				ID:    "about",
				Title: "About",
				Body: "I build **backend services** and the tooling around them. " +
					"Most days that means Go, Postgres and a healthy amount of *reading other people's code*.\n\n" +
					"Before that I spent a few years on embedded firmware, which is where I learned to respect `volatile`.",
				Animation: SlideInLeft,
				Buttons: []Button{
					{Label: "See projects", Href: "#projects"},
					{Label: "Get in touch", Href: "#contact"},
				},
			},
			{
				ID:        "skills",
				Title:     "Skills",
				Animation: FadeIn,
				Cards: []Card{
					{Kind: KindSkill, Title: "Languages", Body: "- Go\n- Python\n- TypeScript\n- C", Tags: []string{"daily", "comfortable"}},
					{Kind: KindSkill, Title: "Infrastructure", Body: "- Kubernetes\n- Terraform\n- Nix", Tags: []string{"ops"}},
					{Kind: KindSkill, Title: "Data", Body: "- PostgreSQL\n- SQLite\n- Kafka"},
					{Kind: KindSkill, Title: "Practices", Body: "- Observability\n- Incident review\n- Property testing"},
				},
			},
			{
				ID:        "projects",
				Title:     "Projects",
				Animation: SlideInRight,
				Cards: []Card{
					{
						Kind:  KindProject,
						Title: "folio",
						Body:  "This page. A terminal portfolio with scroll-driven reveals, built on **bubbletea**.",
						Link:  "https://github.com/sourabhakk/folio",
						Tags:  []string{"go", "tui"},
					},
					{
						Kind:  KindProject,
						Title: "ledgerd",
						Body:  "Double-entry ledger service with idempotent writes and *exactly-once* exports.",
						Link:  "https://github.com/sourabhakk/ledgerd",
						Tags:  []string{"go", "postgres"},
					},
					{
						Kind:  KindProject,
						Title: "tracepipe",
						Body:  "A tiny OpenTelemetry collector processor that samples by tail latency.",
						Link:  "https://github.com/sourabhakk/tracepipe",
						Tags:  []string{"otel"},
					},
				},
			},
			{
				ID:        "mindset",
				Title:     "Mindset",
				Animation: FadeIn,
				Cards: []Card{
					{Kind: KindMindset, Title: "Boring first", Body: "Pick the dull, well-understood tool until it hurts."},
					{Kind: KindMindset, Title: "Measure", Body: "Every performance claim gets a benchmark."},
					{Kind: KindMindset, Title: "Write it down", Body: "Design docs are cheaper than rewrites."},
				},
			},
			{
				ID:    "contact",
				Title: "Contact",
				Body:  "Mail me at `hello@example.com` or find me on https://github.com/SourabhaKK.",
				Buttons: []Button{
					{Label: "GitHub", Href: "https://github.com/SourabhaKK"},
					{Label: "Back to top", Href: "#home"},
				},
			},
		},
		Footer: "Built with Go. Press ? for keys.",
	}
	s.normalize("")
	return s
}
