package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WithEnv sets env var to val for the duration of the test scope.
// Returns a cleanup func to restore previous value.
func WithEnv(t *testing.T, key, val string) func() {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}

// WithPath replaces PATH with exactly the given directories for the test scope.
func WithPath(t *testing.T, dirs ...string) func() {
	t.Helper()
	return WithEnv(t, "PATH", strings.Join(dirs, string(os.PathListSeparator)))
}

// FakeBin writes an executable shell script named name into dir and returns
// its path. The script body runs under /bin/sh.
func FakeBin(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(p, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake bin %s: %v", name, err)
	}
	return p
}
