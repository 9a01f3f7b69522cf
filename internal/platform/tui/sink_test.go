package tui

import (
	"sync"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestFrameBoxKeepsLatest(t *testing.T) {
	box := NewFrameBox()

	if frame, seq := box.Latest(); frame != nil || seq != 0 {
		t.Fatalf("empty box returned %v, %d", frame, seq)
	}

	first := core.NewScreen(2, 2)
	second := core.NewScreen(2, 2)
	box.Present(first)
	box.Present(second)

	frame, seq := box.Latest()
	if frame != second {
		t.Error("Latest should return the most recent frame")
	}
	if seq != 2 {
		t.Errorf("seq = %d, expected 2", seq)
	}
}

func TestFrameBoxResult(t *testing.T) {
	box := NewFrameBox()

	if _, ok := box.Result(); ok {
		t.Fatal("result should be absent before Finish")
	}

	want := snake.Result{Score: 7, Speed: 1, Length: 10, Steps: 42, Reason: snake.ReasonWall}
	box.Finish(want)

	got, ok := box.Result()
	if !ok || got != want {
		t.Errorf("Result() = %+v, %v, expected %+v", got, ok, want)
	}
}

func TestFrameBoxConcurrentUse(t *testing.T) {
	box := NewFrameBox()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 1000 {
			box.Present(core.NewScreen(1, 1))
		}
	}()
	go func() {
		defer wg.Done()
		var last uint64
		for range 1000 {
			_, seq := box.Latest()
			if seq < last {
				t.Errorf("seq went backwards: %d after %d", seq, last)
				return
			}
			last = seq
		}
	}()
	wg.Wait()

	if _, seq := box.Latest(); seq != 1000 {
		t.Errorf("seq = %d, expected 1000", seq)
	}
}
