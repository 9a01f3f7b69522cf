package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/clock"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	sess, _ := newTestSessionAt(t, 80, 25)
	return sess
}

func newTestSessionAt(t *testing.T, w, h int) (*Session, *clock.Manual) {
	t.Helper()
	cfg := config.DefaultSnakeConfig()
	rt := core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: 1}
	clk := clock.NewManual(cfg.Timing.TickRate, 0)

	sess, err := NewSession(cfg, rt, clk, nil)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return sess, clk
}

func waitFrame(t *testing.T, box *FrameBox, seq uint64) *core.Screen {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if frame, got := box.Latest(); got >= seq {
			return frame
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("frame %d never arrived", seq)
	return nil
}

func waitResult(t *testing.T, box *FrameBox) snake.Result {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if res, ok := box.Result(); ok {
			return res
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("game did not finish")
	return snake.Result{}
}

func TestSessionQuit(t *testing.T) {
	sess := newTestSession(t)
	sess.Start(context.Background())

	sess.source.Push(core.Quit())
	res := waitResult(t, sess.frames)

	if res.Reason != snake.ReasonQuit {
		t.Errorf("reason = %q, expected quit", res.Reason)
	}
	if got, ok := sess.Stop(); !ok || got != res {
		t.Errorf("Stop() = %+v, %v, expected %+v", got, ok, res)
	}
}

func TestSessionStopCancels(t *testing.T) {
	sess := newTestSession(t)
	sess.Start(context.Background())

	res, ok := sess.Stop()

	if !ok || res.Reason != snake.ReasonCancelled {
		t.Errorf("Stop() = %+v, %v, expected a cancelled result", res, ok)
	}
}

func TestSessionReservesHelpLine(t *testing.T) {
	sess := newTestSession(t)
	sess.Start(context.Background())
	defer sess.Stop()

	sess.source.Push(core.Quit())
	waitResult(t, sess.frames)

	frame, seq := sess.frames.Latest()
	if seq == 0 {
		t.Fatal("spawn should have presented a frame")
	}
	if frame.Width() != 80 || frame.Height() != 25-helpHeight {
		t.Errorf("frame is %dx%d, expected 80x%d", frame.Width(), frame.Height(), 25-helpHeight)
	}
}

func TestSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Timing.MaxSpeed = 0

	if _, err := NewSession(cfg, core.RuntimeConfig{}, clock.NewManual(0, 0), nil); err == nil {
		t.Error("NewSession should reject an invalid config")
	}
}

func TestSessionRecoversBoundaryFault(t *testing.T) {
	var got *core.BoundaryFault
	sess := &Session{onFault: func(f *core.BoundaryFault) { got = f }}

	func() {
		defer sess.recoverFault()
		core.NewPoint(0, 0).Transform(core.Left, 1)
	}()

	if got == nil {
		t.Fatal("fault should reach the handler")
	}
	if got.Dir != core.Left {
		t.Errorf("fault dir = %s, expected left", got.Dir)
	}
}

func TestSessionReraisesOtherPanics(t *testing.T) {
	sess := &Session{onFault: func(*core.BoundaryFault) {}}

	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, expected the original panic", r)
		}
	}()

	func() {
		defer sess.recoverFault()
		panic("boom")
	}()
}

func TestSessionResizeReachesGame(t *testing.T) {
	sess, clk := newTestSessionAt(t, 120, 40)
	sess.Start(context.Background())
	defer sess.Stop()

	first := waitFrame(t, sess.frames, 1)
	if first.Width() != 120 || first.Height() != 40-helpHeight {
		t.Fatalf("first frame is %dx%d, expected 120x%d", first.Width(), first.Height(), 40-helpHeight)
	}

	m := sess.Model()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	clk.Advance(700)

	frame := waitFrame(t, sess.frames, 2)
	if frame.Width() != 60 || frame.Height() != 20-helpHeight {
		t.Errorf("frame after resize is %dx%d, expected 60x%d", frame.Width(), frame.Height(), 20-helpHeight)
	}
	if _, over := sess.frames.Result(); over {
		t.Error("resize should not end the game")
	}
	if m.GameOver() {
		t.Error("model should still be playing")
	}
}
