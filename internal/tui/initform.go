// Package tui holds the interactive terminal surfaces of ccexport,
// currently the init command's configuration form.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/strrl/ccexport/internal/config"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const (
	fieldOutputDir = iota
	fieldFilenameFormat
	fieldProjectMode
	fieldCount
)

type initModel struct {
	inputs    []textinput.Model
	labels    []string
	focus     int
	done      bool
	cancelled bool
	err       string
}

func newInitModel(defaults config.Config) initModel {
	labels := []string{
		"Output directory",
		fmt.Sprintf("Filename format [%s]", defaults.FilenameFormat),
		fmt.Sprintf("Project mode (merge/separate) [%s]", defaults.ProjectMode),
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 256
		inputs[i] = ti
	}
	inputs[fieldOutputDir].Placeholder = "~/notes/claude"
	inputs[fieldFilenameFormat].Placeholder = defaults.FilenameFormat
	inputs[fieldProjectMode].Placeholder = defaults.ProjectMode
	inputs[fieldOutputDir].Focus()

	return initModel{inputs: inputs, labels: labels}
}

func (m initModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m initModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if err := m.validateFocused(); err != "" {
				m.err = err
				return m, nil
			}
			m.err = ""
			if m.focus == fieldCount-1 {
				m.done = true
				return m, tea.Quit
			}
			m.inputs[m.focus].Blur()
			m.focus++
			m.inputs[m.focus].Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// validateFocused checks the field being confirmed; empty means valid.
func (m initModel) validateFocused() string {
	value := strings.TrimSpace(m.inputs[m.focus].Value())
	switch m.focus {
	case fieldOutputDir:
		if value == "" {
			return "output directory is required"
		}
	case fieldProjectMode:
		if value != "" && value != config.ModeMerge && value != config.ModeSeparate {
			return fmt.Sprintf("project mode must be %q or %q", config.ModeMerge, config.ModeSeparate)
		}
	}
	return ""
}

func (m initModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("ccexport configuration"))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		label := labelStyle
		if i == m.focus {
			label = activeStyle
		}
		b.WriteString(label.Render(m.labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	if m.err != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.err))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: next field • esc: cancel"))
	b.WriteString("\n")

	return b.String()
}

// RunInitForm prompts for the initial configuration. The second return is
// false when the user cancelled.
func RunInitForm(defaults config.Config) (config.Config, bool, error) {
	final, err := tea.NewProgram(newInitModel(defaults)).Run()
	if err != nil {
		return config.Config{}, false, fmt.Errorf("failed to run init form: %w", err)
	}

	m, ok := final.(initModel)
	if !ok || m.cancelled || !m.done {
		return config.Config{}, false, nil
	}

	cfg := defaults
	cfg.OutputDir = strings.TrimSpace(m.inputs[fieldOutputDir].Value())
	if v := strings.TrimSpace(m.inputs[fieldFilenameFormat].Value()); v != "" {
		cfg.FilenameFormat = v
	}
	if v := strings.TrimSpace(m.inputs[fieldProjectMode].Value()); v != "" {
		cfg.ProjectMode = v
	}

	return cfg, true, nil
}
