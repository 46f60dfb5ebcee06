package validation

import (
	"fmt"
	"sort"

	"github.com/sahilm/fuzzy"
)

// Kind classifies how a logical tool is resolved.
type Kind int

const (
	// KindClang: versioned clang-family binary resolved through the
	// suffixed/augmented fallback chain.
	KindClang Kind = iota
	// KindCargoComponent: probed via `cargo +<toolchain> <name> --help`
	// under the channel the config pins for that component.
	KindCargoComponent
	// KindCargoTool: standalone cargo-* binary probed directly.
	KindCargoTool
	// KindOther: standalone external tool probed with a single flag.
	KindOther
)

// ToolSpec describes one supported logical tool.
type ToolSpec struct {
	Name     string
	Kind     Kind
	ProbeArg string // diagnostic flag for KindOther tools
}

// Registry is the closed set of tools xtaskctl knows how to validate.
// Version constraints for the clang family stay data-driven through the
// config's matchers; only the resolution strategy is fixed here.
var Registry = []ToolSpec{
	{Name: "clang", Kind: KindClang},
	{Name: "clang++", Kind: KindClang},
	{Name: "clangd", Kind: KindClang},
	{Name: "clang-format", Kind: KindClang},
	{Name: "clang-tidy", Kind: KindClang},
	{Name: "cargo-clippy", Kind: KindCargoComponent},
	{Name: "cargo-doc", Kind: KindCargoComponent},
	{Name: "cargo-fmt", Kind: KindCargoComponent},
	{Name: "cargo-miri", Kind: KindCargoComponent},
	{Name: "cargo-tarpaulin", Kind: KindCargoTool},
	{Name: "cargo-udeps", Kind: KindCargoTool},
	{Name: "cargo-valgrind", Kind: KindCargoTool},
	{Name: "cmake", Kind: KindOther, ProbeArg: "--help"},
	{Name: "ninja", Kind: KindOther, ProbeArg: "--version"},
}

// Lookup returns the spec for a logical tool name.
func Lookup(name string) (ToolSpec, bool) {
	for _, spec := range Registry {
		if spec.Name == name {
			return spec, true
		}
	}
	return ToolSpec{}, false
}

// Names returns all registered tool names, sorted.
func Names() []string {
	out := make([]string, 0, len(Registry))
	for _, spec := range Registry {
		out = append(out, spec.Name)
	}
	sort.Strings(out)
	return out
}

// unrecognizedTool builds the failure for an unknown name, with a
// fuzzy-matched suggestion when one is close enough to be useful.
func unrecognizedTool(name string) error {
	err := fmt.Errorf("%w: `%s`", ErrUnrecognizedTool, name)
	if matches := fuzzy.Find(name, Names()); len(matches) > 0 {
		return fmt.Errorf("%w (did you mean `%s`?)", err, matches[0].Str)
	}
	return err
}
