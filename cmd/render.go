package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/sourabhakk/folio/pkg/app"
	"github.com/sourabhakk/folio/pkg/page"
)

var renderWidth int

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the whole page with every section revealed",
	Long: `render lays the page out once and prints it to stdout. When stdout
is not a terminal the output carries no escape sequences, so it can be
piped into a file or a pager.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		site, _, err := loadSite(cfg)
		if err != nil {
			return err
		}
		th, err := loadTheme(cfg)
		if err != nil {
			return err
		}

		tty := isatty.IsTerminal(os.Stdout.Fd())
		if !tty {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		width := renderWidth
		if width <= 0 {
			width = terminalWidth()
		}

		doc := page.Layout(site, width, th, app.Geometry(cfg))
		doc.SetPlain(!tty)
		lines := doc.View(0, doc.Height(), page.State{RevealAll: true})
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
		return err
	},
}

// terminalWidth returns the stdout width, or 80 when stdout is not a
// terminal.
func terminalWidth() int {
	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return 80
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func init() {
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "page width in columns (default: terminal width, or 80)")
	rootCmd.AddCommand(renderCmd)
}
