package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Item is one selectable demo row.
type Item struct {
	Name  string
	Title string
	About string
}

// Model is the interactive demo picker. It never runs the demos
// itself; it only collects a selection and quits, so the raw escape
// sequences of the demos stay outside the bubbletea screen.
type Model struct {
	spinner  spinner.Model
	items    []Item
	cursor   int
	selected map[int]bool

	confirmed bool
	cancelled bool
}

// NewModel creates a picker over the given items with nothing
// selected yet.
func NewModel(items []Item) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(neonCyan)

	return Model{
		spinner:  s,
		items:    items,
		selected: make(map[int]bool),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Cancelled reports whether the user backed out of the picker.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// SelectedNames returns the chosen item names in display order. An
// empty result after a confirm means "run everything".
func (m Model) SelectedNames() []string {
	var names []string
	for i, item := range m.items {
		if m.selected[i] {
			names = append(names, item.Name)
		}
	}
	return names
}
