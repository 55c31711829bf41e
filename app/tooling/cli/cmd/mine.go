package cmd

import (
	"github.com/spf13/cobra"
)

// mineCmd represents the mine command.
var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine the pending transactions into the next block",
	RunE: func(cmd *cobra.Command, args []string) error {
		return post("/v1/mining/mine", struct{}{})
	},
}

func init() {
	rootCmd.AddCommand(mineCmd)
}
