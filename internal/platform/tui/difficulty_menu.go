package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-collapse/internal/config"
)

var difficultyOptions = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// DifficultyModel lets the player pick a difficulty preset before a session.
type DifficultyModel struct {
	base     config.Config
	keys     KeyMap
	cursor   int
	width    int
	chosen   bool
	quitting bool
}

// NewDifficultyModel creates a selector for presets applied to base.
// The cursor starts on normal.
func NewDifficultyModel(base config.Config, width int) DifficultyModel {
	return DifficultyModel{
		base:   base,
		keys:   DefaultKeyMap(),
		cursor: 1,
		width:  width,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.cursor = min(m.cursor+1, len(difficultyOptions)-1)
		case key.Matches(msg, m.keys.Select):
			m.chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the preset list with the resulting colors and moves.
func (m DifficultyModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	center := func(s string) string {
		if m.width <= 0 {
			return s
		}
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(titleStyle.Render("C O L L A P S E")))
	b.WriteString("\n\n")
	b.WriteString(center("Select difficulty:"))
	b.WriteString("\n\n")

	for i, preset := range difficultyOptions {
		cfg := m.base
		config.ApplyDifficulty(&cfg, preset)

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-6s  %d colors, %d moves", cursor, preset, cfg.ColorCount, cfg.TotalMoves)
		b.WriteString(center(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(hudStyle.Render("Enter: Select  |  Q: Quit")))
	return b.String()
}

// Selected returns the chosen preset, or false if the player quit.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if !m.chosen {
		return "", false
	}
	return difficultyOptions[m.cursor], true
}

// RunDifficultySelector shows the selector and returns the chosen preset.
// ok is false when the player quit instead of choosing.
func RunDifficultySelector(base config.Config, width int) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(
		NewDifficultyModel(base, width),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isModel := finalModel.(DifficultyModel)
	if !isModel {
		return "", false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}
