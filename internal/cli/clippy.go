package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(clippyCmd)
}

var clippyCmd = &cobra.Command{
	Use:   "clippy [-- args]",
	Short: "Run cargo clippy with warnings denied",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCargoTask(cmd, args, "clippy", "--", "-D", "warnings")
	},
}
