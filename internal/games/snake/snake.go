package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is the ordered body of the creature, head first.
type Snake struct {
	body      []core.Point // Head at index 0
	direction core.Direction
	digesting bool // If true, keep the tail on the next Slither
}

// NewSnake creates a straight snake of the given length whose head is at
// head and whose body trails away from dir. It halts with a boundary fault
// if the body would cross the top or left edge.
func NewSnake(head core.Point, length int, dir core.Direction) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]core.Point, length)
	body[0] = head
	back := dir.Opposite()
	for i := 1; i < length; i++ {
		body[i] = body[i-1].Transform(back, 1)
	}
	return &Snake{body: body, direction: dir}
}

// Slither moves the snake one cell in its current direction. The tail is
// dropped unless the snake is digesting, in which case the body grows by
// one and digesting is cleared.
func (s *Snake) Slither() {
	next := s.Head().Transform(s.direction, 1)
	s.body = append(s.body, core.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = next

	if s.digesting {
		s.digesting = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// Grow makes the next Slither extend the body instead of holding length.
func (s *Snake) Grow() {
	s.digesting = true
}

// SetDirection changes the heading used by the next Slither. Whether a
// turn is allowed is the caller's decision.
func (s *Snake) SetDirection(d core.Direction) {
	s.direction = d
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Digesting reports whether the next Slither will grow the body.
func (s *Snake) Digesting() bool {
	return s.digesting
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Tail returns the last body cell.
func (s *Snake) Tail() core.Point {
	return s.body[len(s.body)-1]
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// ContainsPoint reports whether p is part of the body. A linear scan is
// plenty for board-sized snakes.
func (s *Snake) ContainsPoint(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}
