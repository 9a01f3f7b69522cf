package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/clock"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// helpHeight is the number of rows kept free below the board for the
// key help line.
const helpHeight = 1

// Session pairs one game loop with the Bubble Tea model that drives it.
type Session struct {
	game   *snake.Game
	source *ChannelSource
	frames *FrameBox
	fps    int

	// onFault handles a boundary fault raised by the game. When nil the
	// fault is re-raised and takes the process down.
	onFault func(*core.BoundaryFault)

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSession creates a game for a terminal of rt.ScreenW×rt.ScreenH.
func NewSession(cfg config.SnakeConfig, rt core.RuntimeConfig, clk clock.Clock, logger *log.Logger) (*Session, error) {
	source := NewChannelSource(DefaultQueueSize, cfg.Timing.PollSlice())
	frames := NewFrameBox()

	rt.ScreenH = max(rt.ScreenH-helpHeight, 1)
	game, err := snake.New(cfg, snake.Options{
		Clock:   clk,
		Source:  source,
		Sink:    frames,
		Logger:  logger,
		Runtime: rt,
	})
	if err != nil {
		return nil, err
	}

	return &Session{
		game:   game,
		source: source,
		frames: frames,
		fps:    cfg.Display.FPS,
		done:   make(chan struct{}),
	}, nil
}

// Model returns a Bubble Tea model bound to this session. Window size
// changes seen by the model are passed on to the game.
func (s *Session) Model() Model {
	m := NewModel(s.source, s.frames, s.fps)
	m.resize = s.Resize
	return m
}

// Resize tells the game the terminal is now w×h.
func (s *Session) Resize(w, h int) {
	s.game.Resize(w, max(h-helpHeight, 1))
}

// Start runs the game on its own goroutine until it ends or ctx is
// cancelled.
func (s *Session) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	go func() {
		defer close(s.done)
		defer s.recoverFault()

		res := s.game.Run(ctx)
		s.frames.Finish(res)
	}()
}

func (s *Session) recoverFault() {
	r := recover()
	if r == nil {
		return
	}
	fault, ok := r.(*core.BoundaryFault)
	if !ok || s.onFault == nil {
		panic(r)
	}
	s.onFault(fault)
}

// Stop cancels the game, waits for its goroutine and returns the result.
// The result is absent when the game was stopped by a fault.
func (s *Session) Stop() (snake.Result, bool) {
	if s.cancel != nil {
		s.cancel()
		<-s.done
	}
	return s.frames.Result()
}

// Run plays one game in the current terminal and returns its result once
// the player leaves.
func Run(ctx context.Context, cfg config.SnakeConfig, rt core.RuntimeConfig, clk clock.Clock, logger *log.Logger) (snake.Result, error) {
	sess, err := NewSession(cfg, rt, clk, logger)
	if err != nil {
		return snake.Result{}, err
	}
	sess.Start(ctx)

	p := tea.NewProgram(
		sess.Model(),
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, runErr := p.Run()
	res, _ := sess.Stop()
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return res, fmt.Errorf("tui: %w", runErr)
	}
	return res, nil
}
