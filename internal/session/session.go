// Package session implements the collapse session controller: it owns the
// move budget, score and game-over state and is the only caller of the grid
// engine.
package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-collapse/internal/config"
	"github.com/vovakirdan/tui-collapse/internal/grid"
)

// ID identifies one session, e.g. in the score history.
type ID string

// Controller gates grid operations behind the move/score/game-over rules.
// It is not safe for concurrent use; drive it from one goroutine.
type Controller struct {
	id     ID
	cfg    config.Config
	grid   *grid.Grid
	rng    grid.RandomSource
	logger *log.Logger

	state State
	moves int
	score int

	replayPending bool // Replay requested by an observer during a resolution

	observers []subscription
	nextSubID int
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver subscribes o at construction time.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		c.Subscribe(o)
	}
}

// New validates cfg, generates a random board and returns an Idle session.
func New(cfg config.Config, rng grid.RandomSource, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := grid.New(cfg.Width, cfg.Height, cfg.ColorCount, rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfiguration, err)
	}
	return newController(cfg, g, rng, opts), nil
}

// NewWithGrid starts a session on a prepared board, whose dimensions and
// color count must match cfg. The controller takes ownership of g.
func NewWithGrid(cfg config.Config, g *grid.Grid, rng grid.RandomSource, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if g == nil || rng == nil {
		return nil, fmt.Errorf("%w: nil grid or random source", config.ErrInvalidConfiguration)
	}
	if g.Width() != cfg.Width || g.Height() != cfg.Height || g.ColorCount() != cfg.ColorCount {
		return nil, fmt.Errorf("%w: board %dx%d with %d colors does not match config %s",
			config.ErrInvalidConfiguration, g.Width(), g.Height(), g.ColorCount(), cfg.BoardKey())
	}
	return newController(cfg, g, rng, opts), nil
}

func newController(cfg config.Config, g *grid.Grid, rng grid.RandomSource, opts []Option) *Controller {
	c := &Controller{
		id:     ID(uuid.NewString()),
		cfg:    cfg,
		grid:   g,
		rng:    rng,
		logger: log.New(io.Discard),
		state:  StateIdle,
		moves:  cfg.TotalMoves,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("session", string(c.id))
	return c
}

// Resolution describes what one selection did to the session.
// Accepted is false when the selection was a no-op.
type Resolution struct {
	Accepted   bool
	Group      grid.Group
	ScoreDelta int
	Removed    []grid.Pos
	Fell       []grid.Move
	Spawned    []grid.Spawn
	GameOver   bool
}

// SelectBlock is OnBlockSelected for the block at column x, row y.
func (c *Controller) SelectBlock(x, y int) (Resolution, error) {
	return c.OnBlockSelected(grid.P(x, y))
}

// OnBlockSelected removes the group under p, scores it, lets the board
// settle and refills it. Selections while not Idle and selections of empty
// cells are no-ops; out-of-bounds positions return grid.ErrInvalidPosition
// and leave the session unchanged.
func (c *Controller) OnBlockSelected(p grid.Pos) (Resolution, error) {
	if c.state != StateIdle {
		c.logger.Debug("selection ignored", "pos", p, "state", c.state)
		return Resolution{}, nil
	}

	group, err := c.grid.FindConnectedGroup(p)
	if err != nil {
		return Resolution{}, err
	}
	if group.Len() == 0 {
		return Resolution{}, nil
	}

	c.state = StateResolving

	res := Resolution{
		Accepted:   true,
		Group:      group,
		ScoreDelta: group.Len() * c.cfg.PointsPerBlock,
		Removed:    group.Positions(),
	}
	if err := c.grid.RemoveGroup(res.Removed); err != nil {
		c.state = StateIdle
		return Resolution{}, err
	}

	c.moves--
	c.score += res.ScoreDelta

	res.Fell = c.grid.ApplyGravity()
	res.Spawned = c.grid.RefillEmptyCells(c.rng)

	c.logger.Debug("group removed",
		"pos", p,
		"color", group.Color(),
		"size", group.Len(),
		"score", c.score,
		"moves", c.moves,
	)

	moves, score := c.moves, c.score
	c.notify(func(o Observer) { o.MovesChanged(moves) })
	c.notify(func(o Observer) { o.ScoreChanged(score) })
	c.notify(func(o Observer) { o.BlocksRemoved(res.Removed) })
	c.notify(func(o Observer) { o.BlocksFell(res.Fell) })
	c.notify(func(o Observer) { o.BlocksSpawned(res.Spawned) })

	if c.replayPending {
		c.replayPending = false
		c.replay()
		return res, nil
	}

	if c.moves > 0 {
		c.state = StateIdle
		return res, nil
	}

	c.state = StateGameOver
	res.GameOver = true
	c.logger.Info("game over", "score", c.score, "board", c.cfg.BoardKey())
	c.notify(func(o Observer) { o.GameOver() })
	return res, nil
}

// Replay resets moves and score and returns to Idle. It is accepted in any
// state. The board is kept unless the config asks to reshuffle it.
// During a resolution the reset waits until that resolution has sent all of
// its notifications, and it replaces the end-of-move transition.
func (c *Controller) Replay() {
	if c.state == StateResolving {
		c.replayPending = true
		c.logger.Debug("replay deferred until resolution completes")
		return
	}
	c.replay()
}

func (c *Controller) replay() {
	c.moves = c.cfg.TotalMoves
	c.score = 0
	c.state = StateIdle
	c.logger.Debug("replay", "reshuffle", c.cfg.ReshuffleOnReplay)

	if c.cfg.ReshuffleOnReplay {
		spawns := c.grid.Regenerate(c.rng)
		c.notify(func(o Observer) { o.BlocksSpawned(spawns) })
	}

	moves, score := c.moves, c.score
	c.notify(func(o Observer) { o.MovesChanged(moves) })
	c.notify(func(o Observer) { o.ScoreChanged(score) })
}

// ID returns the session identifier.
func (c *Controller) ID() ID { return c.id }

// Config returns the session rules.
func (c *Controller) Config() config.Config { return c.cfg }

// State returns the current state.
func (c *Controller) State() State { return c.state }

// MovesRemaining returns the number of selections left.
func (c *Controller) MovesRemaining() int { return c.moves }

// Score returns the current score.
func (c *Controller) Score() int { return c.score }

// IsActive reports whether the session still accepts selections.
func (c *Controller) IsActive() bool { return c.state != StateGameOver }

// Cell returns the cell at p; out of bounds reads as empty.
func (c *Controller) Cell(p grid.Pos) grid.Cell { return c.grid.Get(p) }
