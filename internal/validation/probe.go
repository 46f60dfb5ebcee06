package validation

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// probe runs one candidate binary with diagnostic args under an environment
// overlay and returns its stdout. Stateless, no retries: picking another
// candidate after a failure is the resolver's job.
//
// Lookup honors the overlay's PATH when present (the process PATH would
// otherwise win, and augmented search paths could never find anything).
func (v *Validator) probe(bin string, args []string, envVars map[string]string) (string, error) {
	if bin == "" {
		return "", errors.New("empty binary name")
	}
	path, err := v.lookPath(bin, envVars["PATH"])
	if err != nil {
		return "", fmt.Errorf("could not find `%s` in path: %w", bin, ErrNotFound)
	}

	cmd := exec.Command(path, args...)
	cmd.Env = mergeEnviron(os.Environ(), envVars)

	// Output captures stdout and discards stderr; probes are diagnostic only.
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("`%s` %w", bin, ErrProbeFailed)
		}
		// spawn-level OS error, propagate as-is
		return "", err
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("`%s` %w", bin, ErrUndecodableOutput)
	}
	return string(out), nil
}

// lookPath finds bin in overlayPath when given, else in the ambient PATH.
func (v *Validator) lookPath(bin, overlayPath string) (string, error) {
	searchPath := overlayPath
	if searchPath == "" {
		searchPath, _ = v.lookupEnv("PATH")
	}
	return lookPathIn(bin, searchPath)
}

// LookPath resolves a binary using the overlay's PATH when it carries one,
// falling back to the process PATH. Callers spawning the real task process
// use this so an augmented search path governs execution, not just probing.
func (v *Validation) LookPath(bin string) (string, error) {
	searchPath := v.EnvVars["PATH"]
	if searchPath == "" {
		searchPath = os.Getenv("PATH")
	}
	return lookPathIn(bin, searchPath)
}

// lookPathIn searches an explicit path list. Names containing a separator
// are checked directly.
func lookPathIn(bin, searchPath string) (string, error) {
	if strings.ContainsRune(bin, os.PathSeparator) {
		if isExecutable(bin) {
			return bin, nil
		}
		return "", ErrNotFound
	}
	for _, dir := range filepath.SplitList(searchPath) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, bin)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", ErrNotFound
}

func isExecutable(path string) bool {
	st, err := os.Stat(path)
	if err != nil || st.IsDir() {
		return false
	}
	return st.Mode()&0o111 != 0
}

// mergeEnviron layers the overlay over the inherited environment. Overlay
// keys are appended in lexicographic order after the base entries; later
// entries win for duplicate keys on every supported platform.
func mergeEnviron(base []string, overlay map[string]string) []string {
	if len(overlay) == 0 {
		return base
	}
	keys := make([]string, 0, len(overlay))
	for k := range overlay {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(base)+len(keys))
	for _, kv := range base {
		name, _, ok := strings.Cut(kv, "=")
		if ok {
			if _, shadowed := overlay[name]; shadowed {
				continue
			}
		}
		out = append(out, kv)
	}
	for _, k := range keys {
		out = append(out, k+"="+overlay[k])
	}
	return out
}
