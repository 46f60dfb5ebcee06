package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ValidateRustToolchain checks that the named channel appears in `rustup
// toolchain list`. Entries are matched by prefix, so "nightly-2024-01-01"
// matches the fully qualified "nightly-2024-01-01-x86_64-unknown-linux-gnu".
func (v *Validator) ValidateRustToolchain(toolchain string) error {
	out, err := v.probe("rustup", []string{"toolchain", "list"}, nil)
	if err != nil {
		if errors.Is(err, ErrProbeFailed) {
			return fmt.Errorf("`rustup toolchain list` %w", ErrProbeFailed)
		}
		return err
	}
	for _, entry := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(entry), toolchain) {
			return nil
		}
	}
	return fmt.Errorf("%w: could not find toolchain `%s`\nPerhaps you need to install it with `rustup toolchain install %s`?",
		ErrToolchainMissing, toolchain, toolchain)
}
