package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"xtaskctl/internal/system"
	"xtaskctl/internal/validation"
	"xtaskctl/internal/xtask"
)

// loadConfig loads xtask.json from the project root (Git top-level, or CWD
// outside a repo).
func loadConfig(ctx context.Context) (*xtask.Config, error) {
	root, err := system.ProjectRoot(ctx)
	if err != nil {
		return nil, err
	}
	return xtask.Load(root)
}

// overlayEnv layers a validated overlay onto the inherited environment for
// the one task subprocess about to be spawned.
func overlayEnv(val *validation.Validation) []string {
	return append(os.Environ(), val.Environ()...)
}

// toolArgs returns the passthrough arguments given after `--`.
func toolArgs(cmd *cobra.Command, args []string) []string {
	if i := cmd.ArgsLenAtDash(); i >= 0 {
		return args[i:]
	}
	return nil
}

// runTask wires std streams through and reports the subprocess result.
func runTask(c *exec.Cmd) error {
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("`%s` exited with status %d", c.Args[0], exitErr.ExitCode())
		}
		return err
	}
	return nil
}
