// Package validation resolves logical tool names to runnable binaries,
// checks their reported versions against the project config, and produces
// the environment overlay needed to invoke them. The process environment is
// only ever read, never written: overlays are plain values applied by the
// caller to the one subprocess it spawns.
package validation

import (
	"fmt"
	"sort"
)

// Validation is the environment overlay produced by a successful tool
// validation: name remappings (logical name to the concrete binary that
// answered, e.g. clang-format to clang-format-16) and environment variables
// to inject into the eventual subprocess.
type Validation struct {
	Tools   map[string]string
	EnvVars map[string]string
}

// New returns an empty overlay.
func New() *Validation {
	return &Validation{
		Tools:   map[string]string{},
		EnvVars: map[string]string{},
	}
}

// Combine merges other into v. Later values overwrite earlier ones for the
// same key, so a multi-tool validation ends up with the most recently
// validated settings.
func (v *Validation) Combine(other *Validation) {
	for k, val := range other.Tools {
		v.Tools[k] = val
	}
	for k, val := range other.EnvVars {
		v.EnvVars[k] = val
	}
}

// Tool returns the concrete binary name for a logical tool, falling back to
// the logical name when no remapping was recorded.
func (v *Validation) Tool(name string) string {
	if concrete, ok := v.Tools[name]; ok {
		return concrete
	}
	return name
}

// EnvKeys returns the overlay variable names in lexicographic order.
func (v *Validation) EnvKeys() []string {
	keys := make([]string, 0, len(v.EnvVars))
	for k := range v.EnvVars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Environ renders the overlay variables as KEY=VALUE pairs in lexicographic
// key order, so identical inputs always produce identical, comparable
// environments.
func (v *Validation) Environ() []string {
	keys := v.EnvKeys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%s=%s", k, v.EnvVars[k]))
	}
	return out
}
