// Package tui provides the interactive demo picker shown by
// 'termfx run --pick'.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Pick runs the picker and returns the chosen demo names in display
// order. confirmed is false when the user cancelled. An empty name
// list with confirmed true means the user wants every demo.
func Pick(items []Item) (names []string, confirmed bool, err error) {
	program := tea.NewProgram(NewModel(items))

	out, err := program.Run()
	if err != nil {
		return nil, false, fmt.Errorf("picker failed: %w", err)
	}

	final, ok := out.(Model)
	if !ok {
		return nil, false, fmt.Errorf("picker returned unexpected model %T", out)
	}
	if final.Cancelled() {
		return nil, false, nil
	}
	return final.SelectedNames(), true, nil
}
