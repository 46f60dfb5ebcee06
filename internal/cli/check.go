package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"xtaskctl/internal/validation"
)

type checkItem struct {
	Tool   string   `json:"tool"`
	OK     bool     `json:"ok"`
	Binary string   `json:"binary,omitempty"` // concrete name when remapped
	Env    []string `json:"env,omitempty"`    // overlay variable names
	Error  string   `json:"error,omitempty"`
}

type checkReport struct {
	Root   string      `json:"root"`
	Items  []checkItem `json:"items"`
	Failed int         `json:"failed"`
}

var checkJSON bool

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output JSON report")
}

var (
	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	dimStyle = lipgloss.NewStyle().Faint(true)
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every tool tasks depend on and report usability",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Context())
		if err != nil {
			return err
		}
		v := validation.NewValidator(cfg)

		rep := checkReport{Root: cfg.Root()}
		for _, name := range validation.Names() {
			it := checkItem{Tool: name}
			val, err := v.ValidateTool(name)
			if err != nil {
				it.Error = err.Error()
				rep.Failed++
			} else {
				it.OK = true
				if bin := val.Tool(name); bin != name {
					it.Binary = bin
				}
				it.Env = val.EnvKeys()
			}
			rep.Items = append(rep.Items, it)
		}

		if checkJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rep); err != nil {
				return err
			}
		} else {
			wide := 0
			for _, it := range rep.Items {
				if w := runewidth.StringWidth(it.Tool); w > wide {
					wide = w
				}
			}
			for _, it := range rep.Items {
				name := runewidth.FillRight(it.Tool, wide)
				switch {
				case it.OK && it.Binary != "":
					fmt.Printf("%s %s %s\n", okStyle.Render("OK "), name, dimStyle.Render("→ "+it.Binary))
				case it.OK:
					fmt.Printf("%s %s\n", okStyle.Render("OK "), name)
				default:
					fmt.Printf("%s %s %s\n", errStyle.Render("ERR"), name, dimStyle.Render(it.Error))
				}
			}
			fmt.Printf("\nSummary: %d tool(s), %d unusable\n", len(rep.Items), rep.Failed)
		}

		if rep.Failed > 0 {
			return fmt.Errorf("check failed: %d tool(s) unusable", rep.Failed)
		}
		return nil
	},
}
