package validation

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tu "xtaskctl/internal/testutil"
	"xtaskctl/internal/xtask"
)

// fake python3 that succeeds for `--help` and for any script file that
// exists on disk, mirroring how the real interpreter behaves here.
const pythonBody = `if [ "$1" = "--help" ]; then exit 0; fi
[ -f "$1" ] && exit 0
exit 2`

func scriptValidator(t *testing.T, binDir string, fetch func(url, dest string) error) *Validator {
	t.Helper()
	cfg := xtask.Default()
	cfg.BinDir = binDir // absolute: used as-is
	return NewValidator(cfg, WithFetcher(fetch))
}

func TestValidateScript_PresentScriptNeedsNoFetch(t *testing.T) {
	dir := t.TempDir()
	binDir := t.TempDir()
	tu.FakeBin(t, dir, "python3", pythonBody)
	defer tu.WithPath(t, dir)()

	script := filepath.Join(binDir, RunClangFormatScript)
	if err := os.WriteFile(script, []byte("# helper"), 0o644); err != nil {
		t.Fatal(err)
	}

	fetched := 0
	v := scriptValidator(t, binDir, func(url, dest string) error {
		fetched++
		return nil
	})
	if err := v.validateScript(RunClangFormatScript, true); err != nil {
		t.Fatalf("validateScript: %v", err)
	}
	if fetched != 0 {
		t.Fatalf("fetched %d times for a present script", fetched)
	}
}

func TestValidateScript_FetchesOnceThenRevalidates(t *testing.T) {
	dir := t.TempDir()
	binDir := t.TempDir()
	tu.FakeBin(t, dir, "python3", pythonBody)
	defer tu.WithPath(t, dir)()

	fetched := 0
	v := scriptValidator(t, binDir, func(url, dest string) error {
		fetched++
		return os.WriteFile(dest, []byte("# fetched helper"), 0o755)
	})
	if err := v.validateScript(RunClangFormatScript, true); err != nil {
		t.Fatalf("validateScript after fetch: %v", err)
	}
	if fetched != 1 {
		t.Fatalf("expected exactly one fetch, got %d", fetched)
	}
}

func TestValidateScript_NoRecursiveRetry(t *testing.T) {
	dir := t.TempDir()
	binDir := t.TempDir()
	tu.FakeBin(t, dir, "python3", pythonBody)
	defer tu.WithPath(t, dir)()

	fetched := 0
	v := scriptValidator(t, binDir, func(url, dest string) error {
		fetched++
		return nil // "succeeds" but never writes the script
	})
	err := v.validateScript(RunClangFormatScript, true)
	if err == nil {
		t.Fatal("expected failure when the fetched script is still unusable")
	}
	if !errors.Is(err, ErrProbeFailed) {
		t.Fatalf("expected ErrProbeFailed, got %v", err)
	}
	if fetched != 1 {
		t.Fatalf("retry must not fetch again, got %d fetches", fetched)
	}
}

func TestValidateScript_MissingPythonIsNotAFetchTrigger(t *testing.T) {
	defer tu.WithPath(t, t.TempDir())()

	fetched := 0
	v := scriptValidator(t, t.TempDir(), func(url, dest string) error {
		fetched++
		return nil
	})
	err := v.validateScript(RunClangFormatScript, true)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing python3, got %v", err)
	}
	if fetched != 0 {
		t.Fatal("a missing interpreter must not trigger a script fetch")
	}
}

func TestValidateScript_UnknownScriptRejected(t *testing.T) {
	v := scriptValidator(t, t.TempDir(), nil)
	err := v.validateScript("run-mystery-task.py", true)
	if err == nil || !strings.Contains(err.Error(), "unrecognized helper script") {
		t.Fatalf("unexpected error: %v", err)
	}
}
