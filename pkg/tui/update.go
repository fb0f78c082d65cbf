package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case " ":
		if len(m.items) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
		return m, nil

	case "a":
		// Toggle all: select everything unless everything is selected.
		all := len(m.selected) > 0
		for i := range m.items {
			if !m.selected[i] {
				all = false
				break
			}
		}
		for i := range m.items {
			m.selected[i] = !all
		}
		if all {
			m.selected = make(map[int]bool)
		}
		return m, nil

	case "enter":
		m.confirmed = true
		return m, tea.Quit
	}

	return m, nil
}
