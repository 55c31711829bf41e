package cmd

import (
	"github.com/spf13/cobra"
)

var (
	corruptNumber uint64
	corruptValue  uint
)

// corruptCmd represents the corrupt command.
var corruptCmd = &cobra.Command{
	Use:   "corrupt",
	Short: "Tamper with a block's transaction data",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := struct {
			Number uint64 `json:"number"`
			Value  uint   `json:"value"`
		}{
			Number: corruptNumber,
			Value:  corruptValue,
		}

		return post("/v1/chain/corrupt", payload)
	},
}

func init() {
	rootCmd.AddCommand(corruptCmd)
	corruptCmd.Flags().Uint64VarP(&corruptNumber, "number", "n", 1, "Block number to tamper with.")
	corruptCmd.Flags().UintVarP(&corruptValue, "value", "v", 999999, "Value to write into the first transaction.")
}
