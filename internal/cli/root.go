package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xtaskctl/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "xtaskctl",
	Short: "xtaskctl – project task runner",
	Long:  "xtaskctl validates the project's external dev tools and runs tasks (format, tidy, lint, doc, udeps) against them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the doctor TUI
		return app.Start(cmd.Context())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
