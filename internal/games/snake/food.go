package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// placeFood puts food on a uniformly random free cell by resampling until
// the cell is off the body. When no free cell is left the board is full
// and the game ends instead of retrying forever.
func (g *Game) placeFood() {
	if g.snake.Len() >= int(g.width)*int(g.height) {
		g.hasFood = false
		g.end(ReasonBoardFull)
		return
	}

	for {
		p := core.NewPoint(
			uint16(g.rng.Intn(int(g.width))),
			uint16(g.rng.Intn(int(g.height))),
		)
		if !g.snake.ContainsPoint(p) {
			g.food = p
			g.hasFood = true
			return
		}
	}
}
