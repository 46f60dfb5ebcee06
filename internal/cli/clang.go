package cli

import (
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"xtaskctl/internal/validation"
)

func init() {
	clangCmd.AddCommand(clangFormatCmd)
	clangCmd.AddCommand(clangTidyCmd)
	rootCmd.AddCommand(clangCmd)
}

var clangCmd = &cobra.Command{
	Use:   "clang",
	Short: "Run clang-based tasks over the project's C++ code",
}

var clangFormatCmd = &cobra.Command{
	Use:   "format [-- args]",
	Short: "Run run-clang-format.py; use `-- --help` for its own usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}
		v := validation.NewValidator(cfg)
		val, err := v.ValidateTool("clang-format")
		if err != nil {
			return err
		}

		script := filepath.Join(cfg.ScriptDir(), validation.RunClangFormatScript)
		scriptArgs := []string{script}
		// The script invokes `clang-format` by default; when validation
		// settled on a suffixed binary, hand that name through.
		if bin := val.Tool("clang-format"); bin != "clang-format" {
			scriptArgs = append(scriptArgs, "--clang-format-executable", bin)
		}
		scriptArgs = append(scriptArgs, toolArgs(cmd, args)...)

		c := exec.CommandContext(ctx, "python3", scriptArgs...)
		c.Dir = cfg.Root()
		c.Env = overlayEnv(val)
		return runTask(c)
	},
}

var clangTidyCmd = &cobra.Command{
	Use:   "tidy [-- args]",
	Short: "Run run-clang-tidy; use `-- --help` for its own usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}
		v := validation.NewValidator(cfg)
		val, err := v.ValidateTool("clang-tidy")
		if err != nil {
			return err
		}

		// clang-tidy reads compile_commands.json, so make sure the CMake
		// tree is configured and built first.
		if err := runCMake(cmd, cfg); err != nil {
			return err
		}

		bin, err := val.LookPath(val.Tool("run-clang-tidy"))
		if err != nil {
			return err
		}
		tidyArgs := []string{"-clang-tidy-binary", val.Tool("clang-tidy")}
		tidyArgs = append(tidyArgs, toolArgs(cmd, args)...)

		c := exec.CommandContext(ctx, bin, tidyArgs...)
		c.Dir = cfg.Root()
		c.Env = overlayEnv(val)
		return runTask(c)
	},
}
