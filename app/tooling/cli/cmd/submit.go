package cmd

import (
	"github.com/spf13/cobra"
)

var (
	from     string
	to       string
	value    uint
	txID     string
	insecure bool
)

// submitCmd represents the submit command.
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a transaction to the pending pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := struct {
			From   string `json:"from"`
			To     string `json:"to"`
			Value  uint   `json:"value"`
			ID     string `json:"id,omitempty"`
			Secure bool   `json:"secure"`
		}{
			From:   from,
			To:     to,
			Value:  value,
			ID:     txID,
			Secure: !insecure,
		}

		return post("/v1/tx/submit", payload)
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
	submitCmd.Flags().StringVarP(&from, "from", "f", "Alice", "Account sending the funds.")
	submitCmd.Flags().StringVarP(&to, "to", "t", "Bob", "Account receiving the funds.")
	submitCmd.Flags().UintVarP(&value, "value", "v", 10, "Value to send.")
	submitCmd.Flags().StringVarP(&txID, "id", "i", "", "Replay a captured transaction id.")
	submitCmd.Flags().BoolVar(&insecure, "insecure", false, "Disable the replay protection.")
}
