package tui

import (
	"fmt"
	"strings"
)

// View renders the picker
func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(headerSpinnerStyle.Render(m.spinner.View()))
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(" SELECT DEMOS "))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("▸ ")
		}

		check := "[ ]"
		name := nameStyle.Render(fmt.Sprintf("%-12s", item.Name))
		if m.selected[i] {
			check = selectedNameStyle.Render("[x]")
			name = selectedNameStyle.Render(fmt.Sprintf("%-12s", item.Name))
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, check, name, aboutStyle.Render(item.About)))
	}

	b.WriteString("\n")
	count := len(m.SelectedNames())
	if count == 0 {
		b.WriteString(countStyle.Render("No selection — enter runs every demo"))
	} else {
		b.WriteString(countStyle.Render(fmt.Sprintf("%d of %d selected", count, len(m.items))))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("↑/k up • ↓/j down • space toggle • a all • enter run • q cancel"))
	b.WriteString("\n")

	return b.String()
}
