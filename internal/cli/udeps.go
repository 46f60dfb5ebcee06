package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(udepsCmd)
}

var udepsCmd = &cobra.Command{
	Use:   "udeps [-- args]",
	Short: "Find unused dependencies with cargo udeps",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCargoTask(cmd, args, "udeps")
	},
}
