package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"xtaskctl/internal/system"
	"xtaskctl/internal/ui"
	"xtaskctl/internal/xtask"
)

// Start runs the doctor TUI over the project's config and returns any error.
func Start(ctx context.Context) error {
	root, err := system.ProjectRoot(ctx)
	if err != nil {
		return err
	}
	cfg, err := xtask.Load(root)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(ui.InitialModel(cfg), tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
