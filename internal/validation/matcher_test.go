package validation

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"xtaskctl/internal/xtask"
)

var clangRe = regexp.MustCompile(`clang version (\d+(?:\.\d+)*)`)

func matcherValidator(want string) *Validator {
	cfg := xtask.Default()
	cfg.Clang.Version = want
	return NewValidator(cfg)
}

func TestMatchVersion_AcceptsPrefix(t *testing.T) {
	v := matcherValidator("16")
	if err := v.matchVersion("clang", clangRe, "Ubuntu clang version 16.0.3\nTarget: x86_64"); err != nil {
		t.Fatalf("expected 16.0.3 to satisfy prefix 16: %v", err)
	}
}

func TestMatchVersion_RejectsNamingBothVersions(t *testing.T) {
	v := matcherValidator("16")
	err := v.matchVersion("clang", clangRe, "clang version 15.9.0")
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	if !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "`16`") || !strings.Contains(err.Error(), "`15.9.0`") {
		t.Fatalf("message should name both versions: %v", err)
	}
}

func TestMatchVersion_NoTokenIsVendorFailure(t *testing.T) {
	v := matcherValidator("16")
	err := v.matchVersion("clang", clangRe, "Apple LLVM something entirely different")
	if !errors.Is(err, ErrUnrecognizedVendor) {
		t.Fatalf("expected ErrUnrecognizedVendor, got %v", err)
	}
}

// The comparison is a lexical prefix, not a semantic one: "160" satisfies
// "16". Pinned so the behavior stays deliberate rather than incidental.
func TestMatchVersion_LexicalPrefixQuirk(t *testing.T) {
	v := matcherValidator("16")
	if err := v.matchVersion("clang", clangRe, "clang version 160.1"); err != nil {
		t.Fatalf("lexical prefix comparison changed: %v", err)
	}
}
