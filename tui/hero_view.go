package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) renderHeroView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("QUICKFLIP"))
	s.WriteString("\n")
	s.WriteString(taglineStyle.Render("Submit a property. Get instant analysis and buyer matches."))
	s.WriteString("\n\n")

	s.WriteString("What you get:\n")
	for _, line := range []string{
		"Instant analysis (MAO, discount, spread)",
		"Deal ranking (A-D)",
		"Auto-matching to verified buyers",
		"Simple pipeline: submitted > matched > reviewed > closed",
	} {
		s.WriteString("  • " + line + "\n")
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("Enter: Submit a deal • h: History • q: Quit"))

	return s.String()
}

func (m Model) handleHeroKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		m.viewMode = ViewForm
		return m, nil
	case "h":
		m.viewMode = ViewHistory
		return m, nil
	}
	return m, nil
}
