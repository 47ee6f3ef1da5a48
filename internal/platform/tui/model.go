package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-collapse/internal/grid"
	"github.com/vovakirdan/tui-collapse/internal/session"
	"github.com/vovakirdan/tui-collapse/internal/storage"
)

// Model is the Bubble Tea model for a collapse session.
type Model struct {
	ctrl       *session.Controller
	anim       *Animator
	store      *storage.Store
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	scores     leaderboard
	cursor     grid.Pos
	tickRate   int
	best       int
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a Bubble Tea model driving ctrl. store may be nil.
// ctrl's config must pass CheckConfig.
func NewModel(ctrl *session.Controller, store *storage.Store, logger *log.Logger, tickRate int) Model {
	if tickRate <= 0 {
		tickRate = 60
	}
	cfg := ctrl.Config()

	m := Model{
		ctrl:     ctrl,
		anim:     NewAnimator(ctrl, tickRate),
		store:    store,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		scores:   newLeaderboard(),
		cursor:   grid.P(cfg.Width/2, cfg.Height/2),
		tickRate: tickRate,
	}

	if store != nil {
		if best, err := store.HighScore(cfg.BoardKey()); err == nil {
			m.best = best
		} else {
			logger.Warn("could not read high score", "error", err)
		}
		if err := m.scores.load(store, cfg.BoardKey(), 0); err != nil {
			logger.Warn("could not load scores", "error", err)
		}
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cfg := m.ctrl.Config()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.cursor.Y = min(m.cursor.Y+1, cfg.Height-1)
	case key.Matches(msg, m.keys.Down):
		m.cursor.Y = max(m.cursor.Y-1, 0)
	case key.Matches(msg, m.keys.Left):
		m.cursor.X = max(m.cursor.X-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cursor.X = min(m.cursor.X+1, cfg.Width-1)
	case key.Matches(msg, m.keys.Select):
		m.selectBlock()
	case key.Matches(msg, m.keys.Replay):
		m.anim.Flush()
		m.ctrl.Replay()
		m.scoreSaved = false
	}

	return m, nil
}

// selectBlock forwards the cursor position to the session unless the
// previous resolution is still being shown.
func (m *Model) selectBlock() {
	if m.anim.Busy() {
		return
	}
	if _, err := m.ctrl.OnBlockSelected(m.cursor); err != nil {
		if errors.Is(err, grid.ErrInvalidPosition) {
			m.logger.Error("cursor outside board", "pos", m.cursor, "error", err)
			return
		}
		m.logger.Error("selection failed", "error", err)
	}
}

// handleTick advances animations and records the final score once.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.anim.Advance()

	if m.ctrl.State() == session.StateGameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.tickRate)
}

// saveScore stores the final result. Best-effort: the game continues on failure.
func (m *Model) saveScore() {
	score := m.ctrl.Score()
	if m.store == nil || score <= 0 {
		return
	}
	cfg := m.ctrl.Config()
	entry := storage.ScoreEntry{
		SessionID: string(m.ctrl.ID()),
		Board:     cfg.BoardKey(),
		Score:     score,
		MovesUsed: cfg.TotalMoves - m.ctrl.MovesRemaining(),
	}
	id, err := m.store.SaveScore(entry)
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.best = max(m.best, score)
	m.logger.Info("score saved", "score", score, "board", entry.Board)

	if err := m.scores.load(m.store, entry.Board, id); err != nil {
		m.logger.Warn("could not load scores", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("COLLAPSE"))
	sb.WriteString("\n")
	sb.WriteString(renderHUD(m.anim.Score(), m.anim.Moves(), m.best))
	sb.WriteString("\n")
	sb.WriteString(renderBoard(m.anim, m.cursor))
	sb.WriteString("\n")

	if m.anim.GameOverShown() && m.ctrl.State() == session.StateGameOver {
		sb.WriteString(gameOverStyle.Render("GAME OVER  press r to replay"))
		sb.WriteString("\n")
		if m.store != nil {
			sb.WriteString(m.scores.View())
			sb.WriteString("\n")
		}
	}

	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program for ctrl.
func Run(ctrl *session.Controller, store *storage.Store, logger *log.Logger, tickRate int) error {
	if err := CheckConfig(ctrl.Config()); err != nil {
		return err
	}
	model := NewModel(ctrl, store, logger, tickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
