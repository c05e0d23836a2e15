package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/limnkit/limn/internal/ipc"
)

var statusOpts struct {
	jsonOutput bool
}

// waybarStatus is the Waybar custom module JSON format.
type waybarStatus struct {
	Text    string `json:"text"`
	Alt     string `json:"alt,omitempty"`
	Tooltip string `json:"tooltip,omitempty"`
	Class   string `json:"class,omitempty"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon state and active overlay counts",
	Long: `Show the daemon's lifecycle state, how many highlights and popups are
currently active, and how long it has been running.

With --json the output is Waybar's custom module format:

  "custom/limn": {
    "exec": "limn status --json",
    "interval": 5,
    "return-type": "json"
  }`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVar(&statusOpts.jsonOutput, "json", false,
		"Output Waybar-compatible JSON")
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := ipc.NewClient()
	if err != nil {
		return err
	}

	reply, err := client.Status()
	if err != nil {
		if statusOpts.jsonOutput {
			return outputStatus(waybarStatus{Text: "", Alt: "stopped", Class: "stopped"})
		}
		return err
	}

	if statusOpts.jsonOutput {
		total := reply.Highlights + reply.Popups
		status := waybarStatus{
			Alt:   reply.State,
			Class: reply.State,
			Tooltip: fmt.Sprintf("%d highlights, %d popups, up since %s",
				reply.Highlights, reply.Popups, humanize.Time(time.Now().Add(-reply.Uptime()))),
		}
		if total > 0 {
			status.Text = fmt.Sprintf("%d", total)
		}
		return outputStatus(status)
	}

	fmt.Printf("state:      %s\n", reply.State)
	fmt.Printf("highlights: %d\n", reply.Highlights)
	fmt.Printf("popups:     %d\n", reply.Popups)
	fmt.Printf("started:    %s\n", humanize.Time(time.Now().Add(-reply.Uptime())))
	return nil
}

func outputStatus(status waybarStatus) error {
	return json.NewEncoder(os.Stdout).Encode(status)
}
