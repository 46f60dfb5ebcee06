package cli

import (
	"os/exec"

	"github.com/spf13/cobra"

	"xtaskctl/internal/validation"
)

// runCargoTask validates the nightly channel and the cargo subcommand's
// component or tool, then runs `cargo +<toolchain> <sub>` from the project
// root with the validated overlay applied. extra args land after the
// passthrough args (clippy uses this for `-- -D warnings`).
func runCargoTask(cmd *cobra.Command, args []string, sub string, extra ...string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	v := validation.NewValidator(cfg)

	toolchain := cfg.Nightly()
	if err := v.ValidateRustToolchain(toolchain); err != nil {
		return err
	}
	val, err := v.ValidateTool("cargo-" + sub)
	if err != nil {
		return err
	}

	cargoArgs := []string{"+" + toolchain, sub}
	cargoArgs = append(cargoArgs, toolArgs(cmd, args)...)
	cargoArgs = append(cargoArgs, extra...)
	c := exec.CommandContext(ctx, "cargo", cargoArgs...)
	c.Dir = cfg.Root()
	c.Env = overlayEnv(val)
	return runTask(c)
}
