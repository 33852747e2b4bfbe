package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-miner/internal/games/miner/world"
)

// GenerationTable renders the per-depth block probabilities as a table.
func GenerationTable() string {
	columns := []table.Column{{Title: "Depth", Width: 8}}
	for _, t := range world.BlockTypes {
		columns = append(columns, table.Column{Title: strings.ToUpper(t.String()[:1]) + t.String()[1:], Width: 8})
	}

	starts := world.BandStarts()
	rows := make([]table.Row, 0, len(starts))
	for i, from := range starts {
		to := world.GridSize - 1
		if i+1 < len(starts) {
			to = starts[i+1] - 1
		}

		shares := make(map[world.BlockType]float64)
		for _, s := range world.Distribution(from) {
			shares[s.Type] += s.Probability
		}

		row := table.Row{fmt.Sprintf("%d-%d", from, to)}
		for _, t := range world.BlockTypes {
			row = append(row, formatShare(shares[t]))
		}
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2), // Header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return tableStyle.Render(t.View())
}

func formatShare(p float64) string {
	if p == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", p*100)
}
