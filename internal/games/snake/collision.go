package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// hasCollidedWithWall reports whether the head sits on the board edge it
// is heading towards.
func (g *Game) hasCollidedWithWall() bool {
	head := g.snake.Head()

	switch g.snake.Direction() {
	case core.Up:
		return head.Y == 0
	case core.Right:
		return head.X == g.width-1
	case core.Down:
		return head.Y == g.height-1
	default:
		return head.X == 0
	}
}

// hasBittenItself reports whether the next head lands on the body. The
// current head is skipped, and so is the tail when it will be vacated
// this step. It must only be called once hasCollidedWithWall is false.
func (g *Game) hasBittenItself() bool {
	s := g.snake
	next := s.Head().Transform(s.Direction(), 1)

	end := len(s.body)
	if !s.digesting {
		end--
	}
	for i := 1; i < end; i++ {
		if s.body[i] == next {
			return true
		}
	}
	return false
}
