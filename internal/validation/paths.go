package validation

import (
	"os"
	"path/filepath"
	"strings"
)

// searchPath returns the ambient PATH extended with the platform's
// configured fallback locations, joined with the host list separator. On
// platforms with no configured strategy the ambient PATH comes back
// unchanged. The real process PATH is never mutated; the result only feeds
// a single probe's overlay.
func (v *Validator) searchPath() string {
	ambient, _ := v.lookupEnv("PATH")
	if v.goos != "darwin" {
		return ambient
	}

	var extra []string
	for _, sp := range v.cfg.Clang.Platform.MacOS.SearchPaths {
		if sp.Kind == "homebrew" {
			extra = append(extra, v.homebrewLLVMDirs()...)
		}
	}
	if len(extra) == 0 {
		return ambient
	}

	parts := filepath.SplitList(ambient)
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		seen[p] = true
	}
	for _, dir := range extra {
		if !seen[dir] {
			parts = append(parts, dir)
			seen[dir] = true
		}
	}
	return strings.Join(parts, string(os.PathListSeparator))
}

// homebrewLLVMDirs lists existing homebrew LLVM bin directories, preferring
// the keg pinned to the required major version over the unversioned one.
func (v *Validator) homebrewLLVMDirs() []string {
	kegs := []string{"llvm"}
	if major := v.cfg.Clang.Version; major != "" {
		kegs = []string{"llvm@" + major, "llvm"}
	}
	var dirs []string
	for _, prefix := range v.brewPrefixes {
		for _, keg := range kegs {
			dir := filepath.Join(prefix, "opt", keg, "bin")
			if st, err := os.Stat(dir); err == nil && st.IsDir() {
				dirs = append(dirs, dir)
			}
		}
	}
	return dirs
}
