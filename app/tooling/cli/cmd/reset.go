package cmd

import (
	"github.com/spf13/cobra"
)

var clearGuard bool

// resetCmd represents the reset command.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the chain back to the genesis block",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := struct {
			ClearReplayGuard bool `json:"clear_replay_guard"`
		}{
			ClearReplayGuard: clearGuard,
		}

		return post("/v1/chain/reset", payload)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&clearGuard, "clear-guard", false, "Also clear the replay guard's known ids.")
}
