package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(docCmd)
}

var docCmd = &cobra.Command{
	Use:   "doc [-- args]",
	Short: "Build API documentation with cargo doc",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCargoTask(cmd, args, "doc")
	},
}
