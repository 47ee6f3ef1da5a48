package session

import "github.com/vovakirdan/tui-collapse/internal/grid"

// Observer receives value snapshots of session changes.
// Methods are called synchronously from SelectBlock, Replay and Subscribe.
type Observer interface {
	ScoreChanged(score int)
	MovesChanged(moves int)
	GameOver()
	BlocksRemoved(positions []grid.Pos)
	BlocksFell(moves []grid.Move)
	BlocksSpawned(spawns []grid.Spawn)
}

// ObserverFuncs adapts individual handler functions to Observer.
// Nil handlers are skipped.
type ObserverFuncs struct {
	OnScoreChanged  func(score int)
	OnMovesChanged  func(moves int)
	OnGameOver      func()
	OnBlocksRemoved func(positions []grid.Pos)
	OnBlocksFell    func(moves []grid.Move)
	OnBlocksSpawned func(spawns []grid.Spawn)
}

var _ Observer = ObserverFuncs{}

func (f ObserverFuncs) ScoreChanged(score int) {
	if f.OnScoreChanged != nil {
		f.OnScoreChanged(score)
	}
}

func (f ObserverFuncs) MovesChanged(moves int) {
	if f.OnMovesChanged != nil {
		f.OnMovesChanged(moves)
	}
}

func (f ObserverFuncs) GameOver() {
	if f.OnGameOver != nil {
		f.OnGameOver()
	}
}

func (f ObserverFuncs) BlocksRemoved(positions []grid.Pos) {
	if f.OnBlocksRemoved != nil {
		f.OnBlocksRemoved(positions)
	}
}

func (f ObserverFuncs) BlocksFell(moves []grid.Move) {
	if f.OnBlocksFell != nil {
		f.OnBlocksFell(moves)
	}
}

func (f ObserverFuncs) BlocksSpawned(spawns []grid.Spawn) {
	if f.OnBlocksSpawned != nil {
		f.OnBlocksSpawned(spawns)
	}
}

type subscription struct {
	id       int
	observer Observer
}

// Subscribe registers o and immediately sends it the current moves and
// score. The returned function removes the subscription.
func (c *Controller) Subscribe(o Observer) (unsubscribe func()) {
	c.nextSubID++
	id := c.nextSubID
	c.observers = append(c.observers, subscription{id: id, observer: o})

	o.MovesChanged(c.moves)
	o.ScoreChanged(c.score)

	return func() {
		for i, s := range c.observers {
			if s.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// notify calls fn for every observer registered when notify starts.
func (c *Controller) notify(fn func(Observer)) {
	subs := c.observers
	for _, s := range subs {
		fn(s.observer)
	}
}
