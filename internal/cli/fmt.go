package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fmtCmd)
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [-- args]",
	Short: "Run cargo fmt over the project's Rust code",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCargoTask(cmd, args, "fmt")
	},
}
