package cmd

import (
	"github.com/spf13/cobra"
)

var level uint

// difficultyCmd represents the difficulty command.
var difficultyCmd = &cobra.Command{
	Use:   "difficulty",
	Short: "Show or override the mining difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("level") {
			return get("/v1/difficulty")
		}

		payload := struct {
			Level uint `json:"level"`
		}{
			Level: level,
		}

		return post("/v1/difficulty", payload)
	},
}

func init() {
	rootCmd.AddCommand(difficultyCmd)
	difficultyCmd.Flags().UintVarP(&level, "level", "l", 2, "Difficulty level to set.")
}
