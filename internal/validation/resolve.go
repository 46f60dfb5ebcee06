package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ValidateTool resolves a logical tool name to one validated environment
// overlay, or fails with an error naming the tool and the nature of the
// failure. Unrecognized names fail before any subprocess is spawned.
func (v *Validator) ValidateTool(tool string) (*Validation, error) {
	spec, ok := Lookup(tool)
	if !ok {
		return nil, unrecognizedTool(tool)
	}

	result := New()
	switch spec.Kind {
	case KindClang:
		val, err := v.validateClangTool(tool)
		if err != nil {
			return nil, err
		}
		result.Combine(val)
		switch tool {
		case "clang-format":
			// run-clang-format.py drives the formatter, so the python
			// runtime and the script itself must be usable too.
			if err := v.validatePython3(); err != nil {
				return nil, err
			}
			if err := v.validateScript("run-clang-format.py", true); err != nil {
				return nil, err
			}
		case "clang-tidy":
			companion, err := v.validateClangTool("run-clang-tidy")
			if err != nil {
				return nil, err
			}
			result.Combine(companion)
		}
	case KindCargoComponent:
		if err := v.validateCargoComponent(tool); err != nil {
			return nil, err
		}
	case KindCargoTool:
		if err := v.validateCargoTool(tool); err != nil {
			return nil, err
		}
	case KindOther:
		if _, err := v.probe(tool, []string{spec.ProbeArg}, result.EnvVars); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// candidate is one (binary name, environment overlay) attempt within a
// resolution. Ephemeral; consumed by a single probe.
type candidate struct {
	bin     string
	envVars map[string]string
}

// clangCandidates builds the fallback chain for a clang-family tool, in
// strict priority order: suffixed before bare, plain PATH before the
// platform-augmented one.
func (v *Validator) clangCandidates(tool string) []candidate {
	suffixed := tool + v.cfg.Clang.Suffix
	augmented := map[string]string{"PATH": v.searchPath()}
	return []candidate{
		{bin: suffixed},
		{bin: suffixed, envVars: augmented},
		{bin: tool},
		{bin: tool, envVars: augmented},
	}
}

// validateClangTool tries each candidate in order and returns the first
// overlay that probes and version-checks successfully. Intermediate
// failures are logged at debug and swallowed; only the exhausted chain is
// reported.
func (v *Validator) validateClangTool(tool string) (*Validation, error) {
	var re *regexp.Regexp
	if pattern, ok := v.cfg.Clang.Matchers[tool]; ok {
		var err error
		if re, err = regexp.Compile(pattern); err != nil {
			return nil, fmt.Errorf("matcher for `%s`: %w", tool, err)
		}
	}

	for _, cand := range v.clangCandidates(tool) {
		val, err := v.tryCandidate(tool, cand, re)
		if err != nil {
			v.logger.Debug("candidate failed", "tool", tool, "binary", cand.bin, "err", err)
			continue
		}
		return val, nil
	}
	return nil, fmt.Errorf("could not validate tool: `%s`", tool)
}

// tryCandidate probes one candidate and, when a matcher is configured,
// checks the reported version. Tools without a matcher don't support
// `--version` reliably, so they are probed with `--help` and accepted on
// exit 0 alone.
func (v *Validator) tryCandidate(tool string, cand candidate, re *regexp.Regexp) (*Validation, error) {
	arg := "--help"
	if re != nil {
		arg = "--version"
	}
	out, err := v.probe(cand.bin, []string{arg}, cand.envVars)
	if err != nil {
		return nil, err
	}

	val := New()
	for k, value := range cand.envVars {
		val.EnvVars[k] = value
	}
	if cand.bin != tool {
		val.Tools[tool] = cand.bin
	}
	if re != nil {
		if err := v.matchVersion(tool, re, out); err != nil {
			return nil, err
		}
	}
	return val, nil
}

// validateCargoComponent checks a cargo component (clippy, fmt, miri, doc)
// under the toolchain channel the config pins for it. `cargo-doc` maps to
// the `rustdoc` component.
func (v *Validator) validateCargoComponent(tool string) error {
	name := strings.TrimPrefix(tool, "cargo-")
	component := name
	if name == "doc" {
		component = "rustdoc"
	}
	comp, ok := v.cfg.Rust.Components[component]
	if !ok {
		return fmt.Errorf("unrecognized component: `%s`", component)
	}
	toolchain := v.cfg.Stable()
	if comp.Toolchain == "nightly" {
		toolchain = v.cfg.Nightly()
	}
	if _, err := v.probe("cargo", []string{"+" + toolchain, name, "--help"}, nil); err != nil {
		if errors.Is(err, ErrProbeFailed) {
			return fmt.Errorf("`cargo +%s %s --help` %w", toolchain, name, ErrProbeFailed)
		}
		return err
	}
	return nil
}

// validateCargoTool checks a standalone cargo-* binary (tarpaulin, udeps,
// valgrind) with a plain `--help` probe.
func (v *Validator) validateCargoTool(tool string) error {
	_, err := v.probe(tool, []string{"--help"}, nil)
	return err
}

// validatePython3 checks for a usable python runtime; clang-format's helper
// script runs under it rather than being invoked directly.
func (v *Validator) validatePython3() error {
	_, err := v.probe("python3", []string{"--help"}, nil)
	return err
}
