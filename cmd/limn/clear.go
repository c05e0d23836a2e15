package main

import (
	"github.com/spf13/cobra"

	"github.com/limnkit/limn/internal/ipc"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all highlights and popups",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := ipc.NewClient()
		if err != nil {
			return err
		}
		return client.Clear()
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a single highlight or popup by id",
	Long: `Remove one highlight or popup early, using the id printed by
"limn highlight" or "limn popup". Removing an id that has already
expired is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := ipc.NewClient()
		if err != nil {
			return err
		}
		return client.Remove(args[0])
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(removeCmd)
}
