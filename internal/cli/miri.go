package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miriCmd)
}

var miriCmd = &cobra.Command{
	Use:   "miri [-- args]",
	Short: "Run tests under cargo miri",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCargoTask(cmd, args, "miri")
	},
}
