package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quickflip/quickflip/db"
)

func (m Model) renderHistoryView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("SUBMISSION HISTORY"))
	s.WriteString("\n\n")

	subs, err := db.ListSubmissions(m.db, 100)
	if err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		s.WriteString("\n")
	} else if len(subs) == 0 {
		s.WriteString("No submissions yet\n")
	} else {
		columns := []table.Column{
			{Title: "Deal", Width: 14},
			{Title: "Rank", Width: 4},
			{Title: "Stage", Width: 10},
			{Title: "Address", Width: 30},
			{Title: "Price", Width: 10},
			{Title: "Submitted", Width: 16},
		}

		var rows []table.Row
		for _, sub := range subs {
			rank := sub.Rank
			if rank == "" {
				rank = "-"
			}
			rows = append(rows, table.Row{
				sub.DealID,
				rank,
				sub.Stage.Label(),
				sub.Address,
				fmt.Sprintf("$%.0f", sub.AskingPrice),
				sub.CreatedAt.Format("2006-01-02 15:04"),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(true),
			table.WithHeight(m.height-8),
		)
		s.WriteString(t.View())
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("Esc: Back • q: Quit"))

	return s.String()
}

func (m Model) handleHistoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.deal != nil {
			m.viewMode = ViewResult
		} else {
			m.viewMode = ViewHero
		}
		return m, nil
	}
	return m, nil
}
