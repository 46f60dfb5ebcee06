package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"

	"xtaskctl/internal/validation"
	appver "xtaskctl/internal/version"
	"xtaskctl/internal/xtask"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// checkResultMsg carries one finished tool validation back to the model.
type checkResultMsg struct {
	tool   string
	binary string
	err    error
}

// Model is the doctor dashboard: every registered tool with its validation
// state, checked concurrently while a spinner runs.
type Model struct {
	root      string
	validator *validation.Validator
	spin      spinner.Model
	order     []string
	results   map[string]checkResultMsg
	quitting  bool
}

// InitialModel builds the dashboard over a loaded config.
func InitialModel(cfg *xtask.Config) Model {
	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	return Model{
		root:      cfg.Root(),
		validator: validation.NewValidator(cfg),
		spin:      sp,
		order:     validation.Names(),
		results:   map[string]checkResultMsg{},
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	// Validations share no mutable state, so they can run in parallel.
	for _, name := range m.order {
		cmds = append(cmds, checkTool(m.validator, name))
	}
	return tea.Batch(cmds...)
}

func checkTool(v *validation.Validator, tool string) tea.Cmd {
	return func() tea.Msg {
		msg := checkResultMsg{tool: tool}
		val, err := v.ValidateTool(tool)
		if err != nil {
			msg.err = err
			return msg
		}
		msg.binary = val.Tool(tool)
		return msg
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	case checkResultMsg:
		m.results[msg.tool] = msg
		return m, nil
	case spinner.TickMsg:
		if len(m.results) < len(m.order) {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	wide := 0
	for _, name := range m.order {
		if w := runewidth.StringWidth(name); w > wide {
			wide = w
		}
	}

	s := titleStyle.Render("xtaskctl doctor") + dimStyle.Render("  "+m.root) + "\n\n"
	for _, name := range m.order {
		padded := runewidth.FillRight(name, wide)
		res, done := m.results[name]
		switch {
		case !done:
			s += "  " + m.spin.View() + " " + padded + "\n"
		case res.err != nil:
			s += "  " + errStyle.Render("✗") + " " + padded + " " + dimStyle.Render(firstLine(res.err.Error())) + "\n"
		case res.binary != name:
			s += "  " + okStyle.Render("✓") + " " + padded + " " + dimStyle.Render("→ "+res.binary) + "\n"
		default:
			s += "  " + okStyle.Render("✓") + " " + padded + "\n"
		}
	}
	s += "\n" + dimStyle.Render("q to quit · v"+appver.AppVersion) + "\n"
	return s
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
