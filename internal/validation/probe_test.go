package validation

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	tu "xtaskctl/internal/testutil"
	"xtaskctl/internal/xtask"
)

func newTestValidator(t *testing.T, opts ...Option) *Validator {
	t.Helper()
	return NewValidator(xtask.Default(), opts...)
}

func TestProbe_CapturesStdout(t *testing.T) {
	dir := t.TempDir()
	tu.FakeBin(t, dir, "sometool", `echo "sometool version 1.2.3"`)
	defer tu.WithPath(t, dir)()

	v := newTestValidator(t)
	out, err := v.probe("sometool", []string{"--version"}, nil)
	if err != nil {
		t.Fatalf("probe error: %v", err)
	}
	if !strings.Contains(out, "sometool version 1.2.3") {
		t.Fatalf("unexpected stdout: %q", out)
	}
}

func TestProbe_NotFoundIsDistinct(t *testing.T) {
	defer tu.WithPath(t, t.TempDir())()

	v := newTestValidator(t)
	_, err := v.probe("definitely-not-here", []string{"--help"}, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "could not find `definitely-not-here` in path") {
		t.Fatalf("unexpected message: %v", err)
	}
	if errors.Is(err, ErrProbeFailed) {
		t.Fatal("not-found must not classify as probe failure")
	}
}

func TestProbe_NonZeroExit(t *testing.T) {
	dir := t.TempDir()
	tu.FakeBin(t, dir, "grumpy", "exit 3")
	defer tu.WithPath(t, dir)()

	v := newTestValidator(t)
	_, err := v.probe("grumpy", []string{"--help"}, nil)
	if !errors.Is(err, ErrProbeFailed) {
		t.Fatalf("expected ErrProbeFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "`grumpy` failed with non-zero exit code") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestProbe_UndecodableOutput(t *testing.T) {
	dir := t.TempDir()
	tu.FakeBin(t, dir, "binary-noise", `printf '\377\376\375'`)
	defer tu.WithPath(t, dir)()

	v := newTestValidator(t)
	_, err := v.probe("binary-noise", []string{"--version"}, nil)
	if !errors.Is(err, ErrUndecodableOutput) {
		t.Fatalf("expected ErrUndecodableOutput, got %v", err)
	}
}

func TestProbe_OverlayPathGovernsLookup(t *testing.T) {
	ambient := t.TempDir()
	hidden := t.TempDir()
	tu.FakeBin(t, hidden, "tucked-away", "echo ok")
	defer tu.WithPath(t, ambient)()

	v := newTestValidator(t)
	if _, err := v.probe("tucked-away", []string{"--help"}, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected miss on ambient path, got %v", err)
	}
	out, err := v.probe("tucked-away", []string{"--help"}, map[string]string{"PATH": hidden})
	if err != nil {
		t.Fatalf("overlay PATH lookup failed: %v", err)
	}
	if !strings.Contains(out, "ok") {
		t.Fatalf("unexpected stdout: %q", out)
	}
}

func TestMergeEnviron_OverlayWins(t *testing.T) {
	base := []string{"PATH=/usr/bin", "HOME=/home/x", "TERM=xterm"}
	got := mergeEnviron(base, map[string]string{"PATH": "/opt/bin", "AAA": "1"})
	want := []string{"HOME=/home/x", "TERM=xterm", "AAA=1", "PATH=/opt/bin"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("mergeEnviron = %v, want %v", got, want)
	}
}
