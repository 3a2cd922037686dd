package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/janpfeifer/isolationGo/internal/tournament"
	"github.com/samber/lo"
)

// RenderResults returns a table with the score of each test agent (rows) against each reference
// agent (columns), as "wins-losses", and the overall win rate.
func (ui *UI) RenderResults(results *tournament.Results) string {
	roster := results.Roster()
	headers := append([]string{"Agent"}, lo.Map(roster.Reference, func(ref tournament.Agent, _ int) string {
		return ref.Name
	})...)
	headers = append(headers, "Win Rate")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for _, test := range roster.Test {
		row := []string{test.Name}
		for _, ref := range roster.Reference {
			score := results.Score(test.Name, ref.Name)
			cell := fmt.Sprintf("%d-%d", score.Wins, score.Losses)
			if forfeits := lo.Sum(lo.Values(score.Forfeits)); forfeits > 0 {
				cell = fmt.Sprintf("%s (%d forfeits)", cell, forfeits)
			}
			row = append(row, cell)
		}
		row = append(row, fmt.Sprintf("%.1f%%", 100*results.WinRate(test.Name)))
		t.Row(row...)
	}
	if ui.color {
		headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
		cellStyle := lipgloss.NewStyle().Padding(0, 1)
		t.BorderStyle(lipgloss.NewStyle().Foreground(blockedColor)).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
	}
	return t.Render()
}

// PrintResults prints the table of results of a tournament, see RenderResults.
func (ui *UI) PrintResults(results *tournament.Results) {
	fmt.Fprintln(ui.out)
	ui.printCentered(ui.RenderResults(results))
	fmt.Fprintln(ui.out)
}
