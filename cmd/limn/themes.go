package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/limnkit/limn/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	Long: `List bundled themes and any user themes found under
~/.config/limn/themes/. Select one with theme.name in limnd.toml;
the daemon picks up the change without a restart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range theme.ListThemes() {
			if name == theme.DefaultThemeName {
				fmt.Printf("%s (default)\n", name)
				continue
			}
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
