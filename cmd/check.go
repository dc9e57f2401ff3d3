package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sourabhakk/folio/pkg/imageload"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config and content files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "config ok")

		site, path, err := loadSite(cfg)
		if err != nil {
			return err
		}
		if path == "" {
			path = "built-in demo"
		}
		cards := 0
		for _, sec := range site.Sections {
			cards += len(sec.Cards)
		}
		fmt.Fprintf(out, "content ok: %s (%d sections, %d cards)\n", path, len(site.Sections), cards)

		th, err := loadTheme(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "theme ok: %s\n", th.Name)

		proto, err := imageload.ParseProtocol(cfg.Image.Protocol)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "image protocol: %s\n", proto)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
