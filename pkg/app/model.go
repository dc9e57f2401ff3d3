package app

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/sourabhakk/folio/pkg/analytics"
	"github.com/sourabhakk/folio/pkg/config"
	"github.com/sourabhakk/folio/pkg/content"
	"github.com/sourabhakk/folio/pkg/effects"
	"github.com/sourabhakk/folio/pkg/imageload"
	"github.com/sourabhakk/folio/pkg/page"
	"github.com/sourabhakk/folio/pkg/theme"
	"github.com/sourabhakk/folio/pkg/viewport"
)

// Options wires a Model's collaborators. Only Site is required.
type Options struct {
	Config  *config.Config
	Site    *content.Site
	Theme   theme.Theme
	Tracker analytics.Tracker
	Loader  *imageload.Loader
	Zones   *zone.Manager
	Logger  *slog.Logger
	Rand    *rand.Rand
}

// pageState is written by viewport callbacks during Evaluate. It lives
// behind a pointer so callbacks registered on one copy of the Model see
// the same state as later copies.
type pageState struct {
	navScrolled bool
	active      string

	revealed map[string]bool
	fade     map[string]int

	images  map[string]page.Image
	loading map[string]bool
	toLoad  []string

	callbackErr error
}

func newPageState() *pageState {
	return &pageState{
		revealed: make(map[string]bool),
		fade:     make(map[string]int),
		images:   make(map[string]page.Image),
		loading:  make(map[string]bool),
	}
}

// Model is the root bubbletea model.
type Model struct {
	cfg     *config.Config
	site    *content.Site
	th      theme.Theme
	doc     *page.Document
	ctrl    *viewport.Controller
	st      *pageState
	zones   *zone.Manager
	tracker analytics.Tracker
	loader  *imageload.Loader
	logger  *slog.Logger

	keys     keyMap
	help     help.Model
	showHelp bool

	width, height int
	ready         bool
	scroll        int
	scroller      effects.Scroller
	debounceTag   int

	focusables []string
	focus      int // index into focusables, -1 for none
	hover      string
	tilt       effects.Transform
	ripples    *effects.Ripples
	menuOpen   bool
	status     string

	orbs       []effects.Orb
	start      time.Time
	now        time.Time
	typewriter *effects.Typewriter
}

// New creates a Model. Layout happens on the first WindowSizeMsg.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	tracker := opts.Tracker
	if tracker == nil {
		tracker = analytics.Nop{}
	}
	th := opts.Theme
	if th.Name == "" {
		th = theme.Get(cfg.Theme.Name)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	fps := 30
	if f := cfg.Effects.Frame.Duration; f > 0 {
		fps = int(time.Second / f)
	}

	m := Model{
		cfg:      cfg,
		site:     opts.Site,
		th:       th,
		st:       newPageState(),
		zones:    opts.Zones,
		tracker:  tracker,
		loader:   opts.Loader,
		logger:   logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		scroller: effects.NewScroller(fps),
		focus:    -1,
		ripples:  &effects.Ripples{},
		orbs:     effects.NewOrbs(rng, cfg.Effects.Orbs),
		start:    time.Now(),
	}
	m.now = m.start
	if cfg.Effects.Typing {
		m.typewriter = effects.NewTypewriter(opts.Site.Tagline)
	}
	return m
}

// Init starts the animation clock and records the page view.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{TickCmd(m.frame()), PageViewCmd(m.tracker)}
	if m.typewriter != nil {
		cmds = append(cmds, TypeTickCmd(m.cfg.Effects.TypingSpeed.Duration))
	}
	return tea.Batch(cmds...)
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case DebounceEvent:
		if msg.Tag != m.debounceTag || !m.ready {
			return m, nil
		}
		cmd := m.evaluate()
		return m, cmd

	case TickEvent:
		return m.tick(msg.Time)

	case TypeTickEvent:
		if m.typewriter == nil || !m.typewriter.Tick() {
			return m, nil
		}
		return m, TypeTickCmd(m.cfg.Effects.TypingSpeed.Duration)

	case ImageLoadedEvent:
		delete(m.st.loading, msg.ID)
		m.st.images[msg.ID] = page.Image{Lines: msg.Lines, Err: msg.Err}
		if msg.Err != nil && !errors.Is(msg.Err, imageload.ErrDisabled) {
			m.logger.Warn("image load failed", "id", msg.ID, "err", msg.Err)
		}
		return m, nil

	case ContentReloadEvent:
		return m.reload(msg)

	case ThemeChangeEvent:
		m.th = theme.Get(msg.Theme)
		if m.doc != nil {
			m.doc.SetTheme(m.th)
		}
		m.status = "theme: " + m.th.Name
		return m, nil
	}
	return m, nil
}

func (m Model) frame() time.Duration {
	if f := m.cfg.Effects.Frame.Duration; f > 0 {
		return f
	}
	return 33 * time.Millisecond
}

func (m Model) viewportHeight() int {
	return max(m.height-1, 1)
}

func (m Model) maxScroll() int {
	if m.doc == nil {
		return 0
	}
	return m.doc.MaxScroll(m.viewportHeight())
}

func (m Model) resize(width, height int) (tea.Model, tea.Cmd) {
	m.width, m.height = width, height
	if m.doc == nil {
		m.doc = page.Layout(m.site, width, m.th, Geometry(m.cfg))
	} else {
		m.doc.Relayout(m.site, width)
	}
	m.scroll = min(m.scroll, m.maxScroll())
	m.registerRegions()
	m.refreshFocusables()

	var cmd tea.Cmd
	if !m.ready {
		m.ready = true
		cmd = m.evaluate()
	} else {
		cmd = m.scheduleEvaluate()
	}
	return m, cmd
}

// Geometry maps the [layout] config onto page geometry.
func Geometry(cfg *config.Config) page.Geometry {
	g := page.DefaultGeometry()
	g.HeroHeight = cfg.Layout.HeroHeight
	g.MobileBreakpoint = cfg.Layout.MobileBreakpoint
	g.TwoColumnMin = cfg.Layout.TwoColumnMin
	return g
}

// tick advances every animation by one frame.
func (m Model) tick(now time.Time) (tea.Model, tea.Cmd) {
	m.now = now
	for id, level := range m.st.fade {
		if level < page.MaxFade {
			m.st.fade[id] = level + 1
		}
	}
	m.ripples.Prune(now)

	cmds := []tea.Cmd{TickCmd(m.frame())}
	if m.scroller.Active() {
		pos, settled := m.scroller.Step()
		m.scroll = clamp(pos, 0, m.maxScroll())
		if settled {
			cmds = append(cmds, m.evaluate())
		} else {
			cmds = append(cmds, m.scheduleEvaluate())
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) reload(msg ContentReloadEvent) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("content reload failed", "err", msg.Err)
		m.status = "reload failed: " + msg.Err.Error()
		return m, nil
	}
	m.site = msg.Site
	m.status = "content reloaded"
	if m.doc == nil {
		return m, nil
	}
	m.doc.Relayout(m.site, m.width)
	m.scroll = min(m.scroll, m.maxScroll())
	m.registerRegions()
	m.refreshFocusables()
	cmd := m.evaluate()
	return m, cmd
}

// scheduleEvaluate starts a new debounce window, superseding any pending
// one.
func (m *Model) scheduleEvaluate() tea.Cmd {
	m.debounceTag++
	return DebounceCmd(m.debounceTag, m.cfg.Scroll.Debounce.Duration)
}

// evaluate runs the controller against the current viewport and returns
// commands for any images it revealed.
func (m *Model) evaluate() tea.Cmd {
	if m.ctrl == nil {
		return nil
	}
	m.ctrl.Evaluate(viewport.Snapshot{
		ScrollPosition: float64(m.scroll),
		ViewportSize:   float64(m.viewportHeight()),
	})
	if err := m.st.callbackErr; err != nil {
		m.status = "internal error, see log"
		m.st.callbackErr = nil
	}
	return m.startImageLoads()
}

func (m *Model) startImageLoads() tea.Cmd {
	var cmds []tea.Cmd
	for _, id := range m.st.toLoad {
		card, ok := m.doc.Block(cardIDForImage(id))
		if !ok || card.Card == nil {
			continue
		}
		m.st.loading[id] = true
		cmds = append(cmds, LoadImageCmd(m.loader, id, card.Card.Image, card.Width-4, page.ImageRows))
	}
	m.st.toLoad = m.st.toLoad[:0]
	return tea.Batch(cmds...)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Width returns the terminal width.
func (m Model) Width() int { return m.width }

// Height returns the terminal height.
func (m Model) Height() int { return m.height }

// Scroll returns the scroll offset in lines.
func (m Model) Scroll() int { return m.scroll }

// ActiveSection returns the section whose nav link is highlighted.
func (m Model) ActiveSection() string { return m.st.active }

// NavScrolled reports whether the navbar is in its scrolled style.
func (m Model) NavScrolled() bool { return m.st.navScrolled }

// Revealed reports whether block id has been revealed.
func (m Model) Revealed(id string) bool { return m.st.revealed[id] }

// FocusedID returns the focused card, or "".
func (m Model) FocusedID() string {
	if m.focus < 0 || m.focus >= len(m.focusables) {
		return ""
	}
	return m.focusables[m.focus]
}

// MenuOpen reports whether the mobile menu is open.
func (m Model) MenuOpen() bool { return m.menuOpen }

// Status returns the status line message.
func (m Model) Status() string { return m.status }
