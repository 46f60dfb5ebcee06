package cli

import (
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"xtaskctl/internal/validation"
	"xtaskctl/internal/xtask"
)

func init() {
	rootCmd.AddCommand(cmakeCmd)
}

var cmakeCmd = &cobra.Command{
	Use:   "cmake",
	Short: "Configure and build the C++ tree with CMake and Ninja",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Context())
		if err != nil {
			return err
		}
		return runCMake(cmd, cfg)
	},
}

// runCMake validates cmake and ninja, then configures into <root>/build and
// builds. Compile commands are always exported for clang-tidy.
func runCMake(cmd *cobra.Command, cfg *xtask.Config) error {
	ctx := cmd.Context()
	v := validation.NewValidator(cfg)
	val := validation.New()
	for _, tool := range []string{"cmake", "ninja"} {
		tv, err := v.ValidateTool(tool)
		if err != nil {
			return err
		}
		val.Combine(tv)
	}

	buildDir := filepath.Join(cfg.Root(), "build")
	configure := exec.CommandContext(ctx, "cmake",
		"-S", cfg.Root(),
		"-B", buildDir,
		"-G", "Ninja",
		"-DCMAKE_EXPORT_COMPILE_COMMANDS=ON",
	)
	configure.Dir = cfg.Root()
	configure.Env = overlayEnv(val)
	if err := runTask(configure); err != nil {
		return err
	}

	build := exec.CommandContext(ctx, "cmake", "--build", buildDir)
	build.Dir = cfg.Root()
	build.Env = overlayEnv(val)
	return runTask(build)
}
