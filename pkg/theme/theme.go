// Package theme holds the colour palettes folio renders with and turns
// them into lipgloss styles.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the complete color palette for the page.
type Theme struct {
	Name string

	// Base colors
	Background string // hex color e.g. "#0f172a"
	Foreground string
	Dim        string // secondary text
	Muted      string // hidden/pre-reveal text

	// Accents
	Accent  string // primary blue
	Accent2 string // cyan
	Link    string

	// Navbar
	NavBG       string // transparent-state background
	NavScrolled string // background once scrolled past the navbar depth
	NavActive   string // active nav link

	// Cards
	CardBorder string
	CardFocus  string
	Tag        string

	// Effects
	Ripple string
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns a named theme, falling back to ocean if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["ocean"]
}

// Lookup returns a named theme and whether it exists.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a user theme. A theme with the same name is replaced.
func Register(t Theme) {
	thRegister(t)
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
