package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/limnkit/limn/internal/ipc"
)

var popupOpts struct {
	style      string
	bg, fg     string
	durationMs int64
}

var popupCmd = &cobra.Command{
	Use:   "popup <text>",
	Short: "Show a timed popup message",
	Long: `Show a short message in the popup column at the top of the screen.
The newest popup appears on top and each one disappears when its
duration elapses.

Examples:
  limn popup "build finished" --style success --duration 3000
  limn popup "disk almost full" --style warning
  limn popup "deploy" --style custom --bg "#112233" --fg "#ffffff"

The popup id is printed on stdout for an early "limn remove".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPopup,
}

func init() {
	rootCmd.AddCommand(popupCmd)

	popupCmd.Flags().StringVar(&popupOpts.style, "style", "",
		"Popup style: info, success, warning, error or custom (default: info)")
	popupCmd.Flags().StringVar(&popupOpts.bg, "bg", "",
		"Background color as hex, for --style custom")
	popupCmd.Flags().StringVar(&popupOpts.fg, "fg", "",
		"Text color as hex, for --style custom")
	popupCmd.Flags().Int64Var(&popupOpts.durationMs, "duration", 4000,
		"Lifetime in milliseconds")
}

func runPopup(cmd *cobra.Command, args []string) error {
	client, err := ipc.NewClient()
	if err != nil {
		return err
	}

	id, err := client.ShowPopup(ipc.PopupCall{
		Text:       strings.Join(args, " "),
		Style:      popupOpts.style,
		BG:         popupOpts.bg,
		FG:         popupOpts.fg,
		DurationMs: popupOpts.durationMs,
	})
	if err != nil {
		return err
	}

	fmt.Println(id)
	return nil
}
