package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"xtaskctl/internal/xtask"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for xtask.json",
	Long:  "Writes the JSON Schema for the project config to stdout, for editor validation of xtask.json.",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := xtask.MarshalSchema(xtask.Schema())
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}
