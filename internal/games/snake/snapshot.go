package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Steps      uint64
	Score      int
	Speed      int
	IntervalMS int64
	SnakeLen   int
	Head       core.Point
	Dir        core.Direction
	Digesting  bool
	Food       core.Point
	HasFood    bool
	State      State
	Reason     Reason
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Steps:      g.steps,
		Score:      g.score,
		Speed:      g.speed,
		IntervalMS: g.Interval().Milliseconds(),
		SnakeLen:   g.snake.Len(),
		Head:       g.snake.Head(),
		Dir:        g.snake.Direction(),
		Digesting:  g.snake.Digesting(),
		Food:       g.food,
		HasFood:    g.hasFood,
		State:      g.state,
		Reason:     g.reason,
	}
}
