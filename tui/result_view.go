// ABOUTME: Deal result view with rank badge, pipeline bar, and buyer table
// ABOUTME: Renders server-computed analysis through the present package
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quickflip/quickflip/models"
	"github.com/quickflip/quickflip/present"
)

var (
	stageDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	stagePendingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	stageDoneLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Width(14)

	stagePendingLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Width(14)
)

func (m Model) renderResultView() string {
	if m.deal == nil {
		return "No deal to display"
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("DEAL CREATED"))
	s.WriteString("\n")
	s.WriteString(m.renderField("ID", m.deal.DealID))
	s.WriteString(m.renderField("Rank", m.renderRankBadge()))
	s.WriteString("\n")

	s.WriteString(m.renderPipeline())
	s.WriteString("\n\n")

	s.WriteString(fieldLabelStyle.Render("Analysis"))
	s.WriteString("\n")
	entries := present.AnalysisEntries(m.deal.Analysis)
	if len(entries) == 0 {
		s.WriteString("  (none)\n")
	}
	for _, entry := range entries {
		s.WriteString("  ")
		s.WriteString(fieldLabelStyle.Render(entry.Label))
		s.WriteString(fieldValueStyle.Render(entry.Value))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	s.WriteString(fieldLabelStyle.Render("Matched Buyers"))
	s.WriteString("\n")
	s.WriteString(m.renderBuyers())
	s.WriteString("\n")

	s.WriteString(helpStyle.Render("s: Submit another • h: History • q: Quit"))

	return s.String()
}

func (m Model) renderRankBadge() string {
	rank := m.deal.Rank
	if rank == "" {
		rank = "-"
	}
	badge := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("230")).
		Background(present.RankColor(m.deal.Rank))
	return badge.Render(rank)
}

// renderPipeline draws the four-stage progress bar. Reached stages render
// green, the rest grey.
func (m Model) renderPipeline() string {
	var bars, labels strings.Builder

	for _, stage := range models.Stages() {
		bar := strings.Repeat("█", 12) + "  "
		if stage.Reached(m.stage) {
			bars.WriteString(stageDoneStyle.Render(bar))
			labels.WriteString(stageDoneLabelStyle.Render(stage.Label()))
		} else {
			bars.WriteString(stagePendingStyle.Render(bar))
			labels.WriteString(stagePendingLabelStyle.Render(stage.Label()))
		}
	}

	return bars.String() + "\n" + labels.String()
}

func (m Model) renderBuyers() string {
	if len(m.deal.MatchedBuyers) == 0 {
		return "  " + present.NoBuyersMessage + "\n"
	}

	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Email", Width: 30},
		{Title: "Score", Width: 6},
	}

	var rows []table.Row
	for _, buyer := range present.Buyers(m.deal.MatchedBuyers) {
		rows = append(rows, table.Row{buyer.Name, buyer.Email, buyer.Score})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	return t.View()
}

func (m Model) renderField(label, value string) string {
	return fieldLabelStyle.Render(label) + fieldValueStyle.Render(value) + "\n"
}

func (m Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "s", "n":
		// Submit another: the displayed deal is destroyed, never merged.
		m.resetForm()
		m.viewMode = ViewForm
		return m, nil
	case "h":
		m.viewMode = ViewHistory
		return m, nil
	}
	return m, nil
}
