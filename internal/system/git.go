package system

import (
	"context"
	"os"
	"os/exec"
	"strings"
)

// GitRoot returns the repository top-level directory for dir, if in a Git repo.
func GitRoot(ctx context.Context, dir string) (string, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return "", err
	}
	out, err := exec.CommandContext(ctx, "git", "-C", dir, "rev-parse", "--show-toplevel").CombinedOutput()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ProjectRoot resolves the directory tasks run from: the Git top-level when
// inside a repository, otherwise the current working directory.
func ProjectRoot(ctx context.Context) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if root, err := GitRoot(ctx, cwd); err == nil && strings.TrimSpace(root) != "" {
		return root, nil
	}
	return cwd, nil
}
