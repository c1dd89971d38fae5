package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/keylab/keycode/keyconv"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F5FD7")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	input  textinput.Model
	result *keyconv.Result
	err    error
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "XXXXX-XXXXX-XXXXX-XXXXX"
	ti.Prompt = "key: "
	ti.Width = 40
	ti.CharLimit = 64
	ti.Focus()
	return &interactiveModel{input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.input.Value() == "" {
				return m, tea.Quit
			}
			m.input.SetValue("")
			m.result = nil
			m.err = nil
			return m, nil

		case "enter":
			token := strings.TrimSpace(m.input.Value())
			if token == "" {
				return m, nil
			}
			res, err := keyconv.Convert(token)
			if err != nil {
				m.result = nil
				m.err = err
				return m, nil
			}
			m.result = &res
			m.err = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("keyconv"))
	b.WriteString(" activation key transcoder\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if token := strings.TrimSpace(m.input.Value()); token != "" {
		detail := fmt.Sprintf("%d characters, %d hyphens",
			len(token), strings.Count(token, "-"))
		if kind := keyconv.Classify(token); kind == keyconv.KindUnknown {
			b.WriteString(helpStyle.Render("no key shape yet (" + detail + ")"))
		} else {
			b.WriteString(kindStyle.Render(kind.String()))
			b.WriteString(helpStyle.Render(" (" + detail + ")"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	case m.result != nil:
		for _, f := range m.result.Fields {
			b.WriteString(labelStyle.Render(f.Label + ":"))
			b.WriteString(" ")
			b.WriteString(valueStyle.Render(f.Value))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter convert • esc clear • ctrl+c quit"))
	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
