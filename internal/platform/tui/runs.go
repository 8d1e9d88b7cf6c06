package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/neruppu-daa/internal/games/neruppu"
	"github.com/vovakirdan/neruppu-daa/internal/storage"
)

// maxRuns is how many of the session's best runs the game-over screen lists.
const maxRuns = 5

// newRunsTable creates the read-only table of the session's best runs.
func newRunsTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Power-ups", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(maxRuns+1),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// runRows formats run log entries as table rows. The newest high score
// is marked with a star.
func runRows(entries []storage.RunEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		score := humanize.Comma(int64(e.Score))
		if e.NewHigh {
			score += " *"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			score,
			fmt.Sprintf("%d", e.Level),
			fmt.Sprintf("%ds", neruppu.SurvivalSeconds(e.Frames)),
			fmt.Sprintf("%d", e.PowerUps),
		}
	}
	return rows
}

// runsTitleStyle renders the heading above the runs table.
var runsTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229"))

// runsBoxStyle frames the runs table.
var runsBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

// renderRuns draws the titled runs table, or nothing when it is empty.
func renderRuns(t table.Model) string {
	if len(t.Rows()) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		runsTitleStyle.Render("Best runs this session"),
		runsBoxStyle.Render(t.View()),
	)
}
