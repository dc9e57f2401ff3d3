// Package cmd implements the folio command line.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/sourabhakk/folio/pkg/analytics"
	"github.com/sourabhakk/folio/pkg/app"
	"github.com/sourabhakk/folio/pkg/config"
	"github.com/sourabhakk/folio/pkg/content"
	"github.com/sourabhakk/folio/pkg/imageload"
	"github.com/sourabhakk/folio/pkg/theme"
)

const greeting = "hello, fellow developer"

var (
	cfgFile     string
	contentFile string
	verbose     bool
	watch       bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A portfolio page for the terminal",
	Long: `folio renders a personal portfolio as a scrolling terminal page.
Sections fade in as they scroll into view, the navbar tracks the
section under the middle of the screen, and project cards can be
focused and opened from the keyboard or mouse.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/folio/config.toml)")
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "portfolio document (.toml, .yaml); overrides general.content")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the content file when it changes")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := openLog(cfg.General.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile, cfg.General.LogLevel)
	logger.Info(greeting)

	site, path, err := loadSite(cfg)
	if err != nil {
		return err
	}
	th, err := loadTheme(cfg)
	if err != nil {
		return err
	}

	proto, err := imageload.ParseProtocol(cfg.Image.Protocol)
	if err != nil {
		return err
	}
	cache := imageload.NewCache(cfg.Image.MaxCacheMB)
	loader := imageload.NewLoader(proto, cache, logger)
	logger.Debug("image protocol", "protocol", proto.String())

	tracker := analytics.NewLogTracker(logger)
	zones := zone.New()
	model := app.New(app.Options{
		Config:  cfg,
		Site:    site,
		Theme:   th,
		Tracker: tracker,
		Loader:  loader,
		Zones:   zones,
		Logger:  logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if watch {
		if path == "" {
			logger.Warn("--watch ignored: no content file")
		} else if err := app.Watch(ctx, path, p.Send, logger); err != nil {
			return err
		}
	}

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		logger.Error("TUI error", "err", err)
		return err
	}
	stats := cache.Stats()
	logger.Info("exit", "session", tracker.Session(), "image_hits", stats.Hits, "image_misses", stats.Misses)
	fmt.Println(greeting)
	return nil
}

// loadConfig reads --config, or searches the XDG paths.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFromFile(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if contentFile != "" {
		cfg.General.Content = contentFile
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadSite returns the configured document, or the built-in demo when
// none is set. path is empty for the demo.
func loadSite(cfg *config.Config) (site *content.Site, path string, err error) {
	if cfg.General.Content == "" {
		return content.Default(), "", nil
	}
	site, err = app.LoadContent(cfg.General.Content)
	if err != nil {
		return nil, "", err
	}
	return site, cfg.General.Content, nil
}

func loadTheme(cfg *config.Config) (theme.Theme, error) {
	if cfg.Theme.File != "" {
		return theme.LoadFile(cfg.Theme.File)
	}
	return theme.Get(cfg.Theme.Name), nil
}

func openLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
