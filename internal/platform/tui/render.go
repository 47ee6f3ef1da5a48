package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-collapse/internal/config"
	"github.com/vovakirdan/tui-collapse/internal/grid"
)

// palette maps block colors to ANSI colors, one entry per color.
var palette = [...]lipgloss.Color{
	lipgloss.Color("9"),   // bright red
	lipgloss.Color("10"),  // bright green
	lipgloss.Color("12"),  // bright blue
	lipgloss.Color("11"),  // bright yellow
	lipgloss.Color("13"),  // bright magenta
	lipgloss.Color("14"),  // bright cyan
	lipgloss.Color("208"), // orange
	lipgloss.Color("15"),  // white
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	hudStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// MaxColors is the largest color count the terminal can draw distinctly.
const MaxColors = len(palette)

// CheckConfig reports whether cfg can be displayed: every block color needs
// its own palette entry.
func CheckConfig(cfg config.Config) error {
	if cfg.ColorCount > MaxColors {
		return fmt.Errorf("%w: color_count %d exceeds the %d colors the terminal can show",
			config.ErrInvalidConfiguration, cfg.ColorCount, MaxColors)
	}
	return nil
}

// blockStyle returns the style for a block color.
func blockStyle(color int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(palette[color])
}

// renderCell draws one cell as two terminal columns.
func renderCell(c grid.Cell, fresh, cursor bool) string {
	if !c.Filled {
		if cursor {
			return emptyStyle.Render("[]")
		}
		return emptyStyle.Render(" .")
	}

	style := blockStyle(c.Color)
	glyph := "██"
	if fresh {
		glyph = "▓▓"
	}
	if cursor {
		style = style.Reverse(true)
		glyph = "<>"
	}
	return style.Render(glyph)
}

// renderBoard draws the displayed board, top row first.
func renderBoard(a *Animator, cursor grid.Pos) string {
	var sb strings.Builder
	for y := a.h - 1; y >= 0; y-- {
		for x := 0; x < a.w; x++ {
			p := grid.P(x, y)
			c, fresh := a.Cell(p)
			sb.WriteString(renderCell(c, fresh, p == cursor))
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return boardStyle.Render(sb.String())
}

// renderHUD draws the score line.
func renderHUD(score, moves, best int) string {
	return hudStyle.Render(fmt.Sprintf("Score: %d   Moves: %d   Best: %d", score, moves, best))
}
