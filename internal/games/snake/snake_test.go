package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNewSnakeIsCollinear(t *testing.T) {
	for _, dir := range core.Directions {
		t.Run(dir.String(), func(t *testing.T) {
			head := core.NewPoint(5, 5)
			s := NewSnake(head, 4, dir)

			if s.Len() != 4 {
				t.Fatalf("Len() = %d, expected 4", s.Len())
			}
			if s.Head() != head {
				t.Errorf("Head() = %v, expected %v", s.Head(), head)
			}
			if s.Direction() != dir {
				t.Errorf("Direction() = %v, expected %v", s.Direction(), dir)
			}
			for i, p := range s.Body() {
				want := head.Transform(dir.Opposite(), uint16(i))
				if p != want {
					t.Errorf("body[%d] = %v, expected %v", i, p, want)
				}
			}
		})
	}
}

func TestNewSnakeBoundaryFault(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewSnake should fault when the body crosses the left edge")
		}
	}()
	NewSnake(core.NewPoint(1, 5), 3, core.Right)
}

func TestSlither(t *testing.T) {
	s := NewSnake(core.NewPoint(5, 5), 3, core.Right)

	s.Slither()

	want := []core.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}
	assertBody(t, s, want)
}

func TestSlitherAfterTurn(t *testing.T) {
	s := NewSnake(core.NewPoint(5, 5), 3, core.Right)

	s.SetDirection(core.Down)
	s.Slither()

	want := []core.Point{{X: 5, Y: 6}, {X: 5, Y: 5}, {X: 4, Y: 5}}
	assertBody(t, s, want)
}

func TestGrow(t *testing.T) {
	s := NewSnake(core.NewPoint(5, 5), 3, core.Right)

	s.Grow()
	if !s.Digesting() {
		t.Fatal("Grow should set digesting")
	}

	s.Slither()
	if s.Len() != 4 {
		t.Errorf("Len() after growing slither = %d, expected 4", s.Len())
	}
	if s.Digesting() {
		t.Error("digesting should be cleared after one slither")
	}
	if s.Tail() != core.NewPoint(3, 5) {
		t.Errorf("Tail() = %v, expected (3, 5)", s.Tail())
	}

	s.Slither()
	if s.Len() != 4 {
		t.Errorf("Len() should hold at 4, got %d", s.Len())
	}
}

func TestContainsPoint(t *testing.T) {
	s := NewSnake(core.NewPoint(5, 5), 3, core.Up)

	for _, p := range []core.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}} {
		if !s.ContainsPoint(p) {
			t.Errorf("ContainsPoint(%v) = false, expected true", p)
		}
	}
	for _, p := range []core.Point{{X: 5, Y: 4}, {X: 5, Y: 8}, {X: 4, Y: 5}} {
		if s.ContainsPoint(p) {
			t.Errorf("ContainsPoint(%v) = true, expected false", p)
		}
	}
}

func TestBodyIsACopy(t *testing.T) {
	s := NewSnake(core.NewPoint(5, 5), 2, core.Left)
	b := s.Body()
	b[0] = core.NewPoint(0, 0)

	if s.Head() != core.NewPoint(5, 5) {
		t.Error("mutating Body() result should not affect the snake")
	}
}

func assertBody(t *testing.T, s *Snake, want []core.Point) {
	t.Helper()
	got := s.Body()
	if len(got) != len(want) {
		t.Fatalf("body length = %d, expected %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("body[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}
