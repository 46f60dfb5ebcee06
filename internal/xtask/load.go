package xtask

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the config file looked up under the project root.
const FileName = "xtask.json"

// Load reads xtask.json from root. A missing file yields the built-in
// defaults without error; a present but unreadable or invalid file is an
// error. Unset fields fall back to their defaults so partial configs work.
func Load(root string) (*Config, error) {
	cfg := Default()
	cfg.root = root

	p := filepath.Join(root, FileName)
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills fields the file left unset.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Clang.Matchers == nil {
		cfg.Clang.Matchers = def.Clang.Matchers
	}
	if cfg.Rust.Components == nil {
		cfg.Rust.Components = def.Rust.Components
	}
	if cfg.Rust.Toolchain.Nightly == "" {
		cfg.Rust.Toolchain.Nightly = def.Rust.Toolchain.Nightly
	}
	if cfg.Rust.Toolchain.Stable == "" {
		cfg.Rust.Toolchain.Stable = def.Rust.Toolchain.Stable
	}
	if cfg.BinDir == "" {
		cfg.BinDir = def.BinDir
	}
}
