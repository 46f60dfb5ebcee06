package cli

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"xtaskctl/internal/system"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

// directories never worth watching: VCS metadata and build output would
// retrigger the very task that produced them.
var watchSkipDirs = map[string]bool{
	".git":         true,
	".xtask":       true,
	"build":        true,
	"target":       true,
	"node_modules": true,
}

var watchCmd = &cobra.Command{
	Use:   "watch <task> [-- args]",
	Short: "Re-run a task whenever project files change",
	Long:  "Runs the given xtaskctl task once, then again after every change under the project root (build output and VCS metadata excluded).",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Context())
		if err != nil {
			return err
		}

		self, err := os.Executable()
		if err != nil {
			return err
		}
		taskArgs := args
		runOnce := func() {
			c := exec.CommandContext(cmd.Context(), self, taskArgs...)
			c.Dir = cfg.Root()
			if err := runTask(c); err != nil {
				system.Logger.Error("task failed", "task", strings.Join(taskArgs, " "), "err", err)
			}
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()
		if err := watchTree(watcher, cfg.Root()); err != nil {
			return err
		}
		system.Logger.Info("watching", "root", cfg.Root(), "task", strings.Join(taskArgs, " "))

		runOnce()

		// Debounce bursts of events into one re-run.
		var timer *time.Timer
		pending := make(chan struct{}, 1)
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if ev.Op&fsnotify.Create != 0 {
					if st, err := os.Stat(ev.Name); err == nil && st.IsDir() && !watchSkipDirs[filepath.Base(ev.Name)] {
						_ = watchTree(watcher, ev.Name)
					}
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(400*time.Millisecond, func() {
					select {
					case pending <- struct{}{}:
					default:
					}
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				system.Logger.Warn("watch error", "err", err)
			case <-pending:
				runOnce()
			case <-cmd.Context().Done():
				return nil
			}
		}
	},
}

// watchTree registers root and every non-excluded directory under it.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !de.IsDir() {
			return nil
		}
		name := de.Name()
		if path != root && (watchSkipDirs[name] || strings.HasPrefix(name, ".")) {
			return filepath.SkipDir
		}
		if werr := watcher.Add(path); werr != nil {
			return fmt.Errorf("watch %s: %w", path, werr)
		}
		return nil
	})
}
