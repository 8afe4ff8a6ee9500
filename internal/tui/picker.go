// Package tui provides terminal user interface components for sshtint
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sshtint/internal/sshconfig"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionConnect
	ActionQuit
)

// PickerResult holds the result of the picker
type PickerResult struct {
	Action Action
	Host   *sshconfig.HostColorRecord
}

// hostItem implements list.Item for host display
type hostItem struct {
	record *sshconfig.HostColorRecord
}

func (i hostItem) Title() string {
	return i.record.Alias
}

func (i hostItem) Description() string {
	parts := []string{}
	if i.record.TerminalColor != "" {
		parts = append(parts, Swatch(i.record.TerminalColor)+" term "+i.record.TerminalColor)
	}
	if i.record.EditorColor != "" {
		parts = append(parts, Swatch(i.record.EditorColor)+" code "+i.record.EditorColor)
	}
	if i.record.Badge != "" {
		parts = append(parts, "badge: "+i.record.Badge)
	}
	if !i.record.SwitchEnabled() {
		parts = append(parts, "no auto-switch")
	}
	return strings.Join(parts, " | ")
}

func (i hostItem) FilterValue() string {
	return i.record.Alias
}

// Swatch renders a colored block for a "#RRGGBB" token.
func Swatch(color string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("  ")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the host picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new host picker over the configured hosts
func NewPicker(hosts sshconfig.HostColorMap) Model {
	aliases := hosts.Aliases()
	sort.Strings(aliases)

	items := make([]list.Item, len(aliases))
	for i, alias := range aliases {
		items[i] = hostItem{record: hosts[alias]}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "sshtint - Select Host"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(hostItem); ok {
				m.result = PickerResult{
					Action: ActionConnect,
					Host:   item.record,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Connect  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive host picker
func RunPicker(hosts sshconfig.HostColorMap) (PickerResult, error) {
	if len(hosts) == 0 {
		return PickerResult{Action: ActionNone}, nil
	}

	m := NewPicker(hosts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// SimplePicker is a non-interactive listing of the configured hosts
func SimplePicker(hosts sshconfig.HostColorMap) string {
	var sb strings.Builder

	sb.WriteString("sshtint - Configured Hosts\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(hosts) == 0 {
		sb.WriteString("No hosts with color annotations found.\n")
		sb.WriteString("Add comments like '# iterm-color: #1a1a2e' before Host entries.\n")
		return sb.String()
	}

	aliases := hosts.Aliases()
	sort.Strings(aliases)

	for i, alias := range aliases {
		rec := hosts[alias]
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, alias))
		if rec.TerminalColor != "" {
			sb.WriteString(fmt.Sprintf("   term: %s\n", rec.TerminalColor))
		}
		if rec.EditorColor != "" {
			sb.WriteString(fmt.Sprintf("   code: %s\n", rec.EditorColor))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
