package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-collapse/internal/storage"
)

// leaderboardSize is the number of results shown at game over.
const leaderboardSize = 5

var leaderboardEmptyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	Italic(true)

// leaderboard is the best-scores panel shown under the game-over banner.
type leaderboard struct {
	table   table.Model
	entries []storage.ScoreEntry
}

func newLeaderboard() leaderboard {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Moves", Width: 6},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(leaderboardSize+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return leaderboard{table: t}
}

// load reads the best results for board. highlight is the ID of the row to
// select, usually the result just saved; 0 selects nothing in particular.
func (l *leaderboard) load(store *storage.Store, board string, highlight int64) error {
	if store == nil {
		return nil
	}
	entries, err := store.TopScores(board, leaderboardSize)
	if err != nil {
		return err
	}
	l.entries = entries

	rows := make([]table.Row, len(entries))
	cursor := 0
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.MovesUsed),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
		if e.ID == highlight {
			cursor = i
		}
	}
	l.table.SetRows(rows)
	l.table.SetCursor(cursor)
	return nil
}

// Len returns the number of loaded results.
func (l leaderboard) Len() int {
	return len(l.entries)
}

// View renders the table or a hint when nothing is recorded.
func (l leaderboard) View() string {
	if len(l.entries) == 0 {
		return leaderboardEmptyStyle.Render("No scores recorded yet.")
	}
	return l.table.View()
}
