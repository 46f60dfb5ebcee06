package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// matchVersion extracts a version token from probe output using the first
// capture group of re and checks it against the configured version prefix.
// The comparison is a plain lexical prefix: "16" accepts "16.0.3", and also
// "160.0".
func (v *Validator) matchVersion(tool string, re *regexp.Regexp, output string) error {
	m := re.FindStringSubmatch(output)
	if len(m) < 2 {
		return fmt.Errorf("`%s` failed validation; ensure you are using the official clang toolchain: %w", tool, ErrUnrecognizedVendor)
	}
	actual := m[1]
	want := v.cfg.Clang.Version
	if strings.HasPrefix(actual, want) {
		return nil
	}
	return fmt.Errorf("`%s` failed validation; expected version compatible with `%s` but found `%s`: %w", tool, want, actual, ErrVersionMismatch)
}
