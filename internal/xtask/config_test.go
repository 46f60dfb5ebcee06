package xtask

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	root := t.TempDir()
	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Root() != root {
		t.Fatalf("Root() = %q, want %q", cfg.Root(), root)
	}
	if cfg.Clang.Suffix != "-16" || cfg.Clang.Version != "16" {
		t.Fatalf("unexpected clang defaults: %+v", cfg.Clang)
	}
	if _, ok := cfg.Clang.Matchers["clang-format"]; !ok {
		t.Fatalf("expected default clang-format matcher, got %v", cfg.Clang.Matchers)
	}
	if comp, ok := cfg.Rust.Components["clippy"]; !ok || comp.Toolchain != "nightly" {
		t.Fatalf("unexpected rust component defaults: %v", cfg.Rust.Components)
	}
	if cfg.Nightly() != "nightly" || cfg.Stable() != "stable" {
		t.Fatalf("unexpected toolchain defaults: %+v", cfg.Rust.Toolchain)
	}
}

func TestLoad_PartialFileKeepsDefaultsElsewhere(t *testing.T) {
	root := t.TempDir()
	body := `{"clang": {"suffix": "-17", "version": "17"}, "rust": {"toolchain": {"nightly": "nightly-2024-01-01"}}}`
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Clang.Suffix != "-17" || cfg.Clang.Version != "17" {
		t.Fatalf("file values not applied: %+v", cfg.Clang)
	}
	if cfg.Nightly() != "nightly-2024-01-01" {
		t.Fatalf("Nightly() = %q", cfg.Nightly())
	}
	if cfg.Stable() != "stable" {
		t.Fatalf("Stable() should fall back to default, got %q", cfg.Stable())
	}
	if len(cfg.Clang.Matchers) == 0 {
		t.Fatal("matchers should fall back to defaults")
	}
	if cfg.BinDir == "" {
		t.Fatal("binDir should fall back to default")
	}
}

func TestLoad_InvalidJSONIsAnError(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(root); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestScriptDir_RelativeAndAbsolute(t *testing.T) {
	root := t.TempDir()
	cfg, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, ".xtask", "bin")
	if got := cfg.ScriptDir(); got != want {
		t.Fatalf("ScriptDir() = %q, want %q", got, want)
	}

	abs := t.TempDir()
	cfg.BinDir = abs
	if got := cfg.ScriptDir(); got != abs {
		t.Fatalf("absolute BinDir should be used as-is, got %q", got)
	}
}

func TestSchema_DescribesConfigSections(t *testing.T) {
	b, err := MarshalSchema(Schema())
	if err != nil {
		t.Fatalf("MarshalSchema: %v", err)
	}
	s := string(b)
	for _, key := range []string{`"clang"`, `"rust"`, `"matchers"`, `"searchPaths"`} {
		if !strings.Contains(s, key) {
			t.Fatalf("schema missing %s:\n%s", key, s)
		}
	}
}
