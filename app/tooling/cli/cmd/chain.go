package cmd

import (
	"github.com/spf13/cobra"
)

// chainCmd represents the chain command.
var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "List the blocks in the chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		return get("/v1/chain/list")
	},
}

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the chain and report tampered blocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return get("/v1/chain/validate")
	},
}

// mempoolCmd represents the mempool command.
var mempoolCmd = &cobra.Command{
	Use:   "mempool",
	Short: "List the uncommitted transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return get("/v1/tx/uncommitted/list")
	},
}

// accountsCmd represents the accounts command.
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the current account balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		return get("/v1/accounts/list")
	},
}

func init() {
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(mempoolCmd)
	rootCmd.AddCommand(accountsCmd)
}
