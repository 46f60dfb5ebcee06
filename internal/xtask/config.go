package xtask

import (
	"path/filepath"
)

// Config describes the external tools a project expects: clang toolchain
// version constraints and the rust components tasks rely on.
// Loaded once at startup from <project root>/xtask.json and treated as
// read-only afterwards, so concurrent validations need no locking.
type Config struct {
	Clang ClangConfig `json:"clang"`
	Rust  RustConfig  `json:"rust"`
	// BinDir is the project-relative directory holding helper scripts
	// (e.g. run-clang-format.py).
	BinDir string `json:"binDir,omitempty"`

	root string
}

// ClangConfig constrains the clang family of tools.
type ClangConfig struct {
	// Matchers maps a tool name to a regex whose first capture group
	// extracts the version token from `tool --version` output. Tools
	// without a matcher are probed with `--help` and accepted on exit 0.
	Matchers map[string]string `json:"matchers"`
	// Suffix is the versioned-binary naming convention, e.g. "-16" for
	// clang-format-16. Suffixed candidates are always preferred.
	Suffix string `json:"suffix"`
	// Version is the required version prefix; "16" accepts "16.0.3".
	Version  string         `json:"version"`
	Platform PlatformConfig `json:"platform"`
}

// PlatformConfig holds per-OS search-path strategies.
type PlatformConfig struct {
	MacOS MacOSConfig `json:"macos"`
}

// MacOSConfig lists extra probing locations used on darwin only.
type MacOSConfig struct {
	SearchPaths []SearchPath `json:"searchPaths"`
}

// SearchPath names a well-known install-location strategy.
type SearchPath struct {
	Kind string `json:"kind"` // currently only "homebrew"
}

// RustConfig describes cargo components and toolchain channels.
type RustConfig struct {
	// Components maps a component name (clippy, fmt, miri, rustdoc) to
	// the toolchain channel it must run under.
	Components map[string]RustComponent `json:"components"`
	Toolchain  RustToolchain            `json:"toolchain"`
}

// RustComponent pins a cargo component to a toolchain channel.
type RustComponent struct {
	Toolchain string `json:"toolchain"`
}

// RustToolchain names the concrete channels tasks request.
type RustToolchain struct {
	Nightly string `json:"nightly"`
	Stable  string `json:"stable"`
}

// Root returns the project root the config was loaded for.
func (c *Config) Root() string { return c.root }

// ScriptDir returns the absolute helper-script directory.
func (c *Config) ScriptDir() string {
	if filepath.IsAbs(c.BinDir) {
		return c.BinDir
	}
	return filepath.Join(c.root, c.BinDir)
}

// Nightly returns the configured nightly channel name.
func (c *Config) Nightly() string { return c.Rust.Toolchain.Nightly }

// Stable returns the configured stable channel name.
func (c *Config) Stable() string { return c.Rust.Toolchain.Stable }

// Default returns the built-in config used when no xtask.json exists.
func Default() *Config {
	return &Config{
		Clang: ClangConfig{
			Matchers: map[string]string{
				"clang":        `clang version (\d+(?:\.\d+)*)`,
				"clang++":      `clang version (\d+(?:\.\d+)*)`,
				"clangd":       `clangd version (\d+(?:\.\d+)*)`,
				"clang-format": `clang-format version (\d+(?:\.\d+)*)`,
				"clang-tidy":   `LLVM version (\d+(?:\.\d+)*)`,
			},
			Suffix:  "-16",
			Version: "16",
			Platform: PlatformConfig{
				MacOS: MacOSConfig{
					SearchPaths: []SearchPath{{Kind: "homebrew"}},
				},
			},
		},
		Rust: RustConfig{
			Components: map[string]RustComponent{
				"clippy":  {Toolchain: "nightly"},
				"fmt":     {Toolchain: "nightly"},
				"miri":    {Toolchain: "nightly"},
				"rustdoc": {Toolchain: "nightly"},
			},
			Toolchain: RustToolchain{
				Nightly: "nightly",
				Stable:  "stable",
			},
		},
		BinDir: filepath.Join(".xtask", "bin"),
	}
}
