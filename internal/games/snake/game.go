// Package snake implements the fixed-cadence snake loop: each step waits
// out an interval while polling for commands, then checks collisions,
// moves the snake and renders a frame.
package snake

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/clock"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the phase of a game.
type State string

const (
	StateSpawning State = "spawning"
	StateRunning  State = "running"
	StateGameOver State = "game_over"
)

// Reason tells why a game ended.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonQuit      Reason = "quit"
	ReasonCancelled Reason = "cancelled"
	ReasonWall      Reason = "wall"
	ReasonSelf      Reason = "self"
	ReasonBoardFull Reason = "board_full"
)

// Result is reported once when a game ends.
type Result struct {
	Score  int
	Speed  int
	Length int
	Steps  uint64
	Reason Reason
}

// Options wires a game to its collaborators. Nil fields get harmless
// defaults: the System clock, a source with no input, a sink that drops
// frames and a logger that discards.
type Options struct {
	Clock   clock.Clock
	Source  core.CommandSource
	Sink    core.RenderSink
	Logger  *log.Logger
	Runtime core.RuntimeConfig
}

// Game is one session of snake. It owns its snake and food exclusively;
// Run must be called from a single goroutine.
type Game struct {
	width  uint16
	height uint16

	snake   *Snake
	food    core.Point
	hasFood bool

	speed int
	score int
	steps uint64

	state  State
	reason Reason

	timing      config.TimingConfig
	progression bool

	rng    *rand.Rand
	clock  clock.Clock
	source core.CommandSource
	sink   core.RenderSink
	logger *log.Logger

	screenW int
	screenH int
	resize  atomic.Uint64 // Pending display size as w<<32 | h, 0 if none
}

// New creates a game in the Spawning state. The head starts at the
// center of the board with the body trailing behind a randomly chosen
// heading.
func New(cfg config.SnakeConfig, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		width:       uint16(cfg.Board.Width),
		height:      uint16(cfg.Board.Height),
		timing:      cfg.Timing,
		progression: cfg.Difficulty.Enabled,
		state:       StateSpawning,
		rng:         rand.New(rand.NewSource(seed)),
		clock:       opts.Clock,
		source:      opts.Source,
		sink:        opts.Sink,
		logger:      opts.Logger,
		screenW:     opts.Runtime.ScreenW,
		screenH:     opts.Runtime.ScreenH,
	}
	if g.clock == nil {
		g.clock = clock.System()
	}
	if g.source == nil {
		g.source = core.NopSource{}
	}
	if g.sink == nil {
		g.sink = core.NopSink{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.screenW <= 0 || g.screenH <= 0 {
		def := core.DefaultConfig()
		g.screenW, g.screenH = def.ScreenW, def.ScreenH
	}

	dir := core.Directions[g.rng.Intn(len(core.Directions))]
	head := core.NewPoint(g.width/2, g.height/2)
	g.snake = NewSnake(head, cfg.Snake.InitialLength, dir)

	return g, nil
}

// Run plays the game to the end and returns the result. Cancelling ctx
// ends the game like a Quit command. A game that has already ended
// returns its result immediately.
func (g *Game) Run(ctx context.Context) Result {
	if g.state == StateSpawning {
		g.spawn()
	}

	for g.state == StateRunning {
		g.step(ctx)
	}

	res := g.Result()
	g.logger.Info("game over",
		"score", res.Score,
		"speed", res.Speed,
		"length", res.Length,
		"steps", res.Steps,
		"reason", res.Reason,
	)
	return res
}

// spawn places the first food, shows the first frame and starts running.
func (g *Game) spawn() {
	w, h := g.Board()
	g.logger.Debug("game started",
		"board", fmt.Sprintf("%dx%d", w, h),
		"length", g.snake.Len(),
		"heading", g.snake.Direction(),
		"interval", g.Interval(),
	)

	g.state = StateRunning
	g.placeFood()
	g.render()
}

// step runs one interval: poll until it elapses, then move.
func (g *Game) step(ctx context.Context) {
	interval := g.Interval()
	heading := g.snake.Direction()
	start := g.clock.Now()

	for {
		elapsed := g.clock.Elapsed(start)
		if elapsed >= interval {
			break
		}

		select {
		case <-ctx.Done():
			g.end(ReasonCancelled)
			return
		default:
		}

		cmd, ok := g.source.TryNext(interval - elapsed)
		if !ok {
			continue
		}

		switch cmd.Kind {
		case core.CommandQuit:
			g.end(ReasonQuit)
			return
		case core.CommandTurn:
			// Turns are judged against the heading the snake last moved in,
			// so two quick turns cannot add up to a reversal.
			if cmd.Dir != heading && cmd.Dir != heading.Opposite() {
				g.snake.SetDirection(cmd.Dir)
			}
		}
	}

	g.advance()
}

// advance checks collisions against the direction in effect now, then
// moves the snake and handles food.
func (g *Game) advance() {
	if g.hasCollidedWithWall() {
		g.end(ReasonWall)
		return
	}
	if g.hasBittenItself() {
		g.end(ReasonSelf)
		return
	}

	g.snake.Slither()
	g.steps++

	if g.hasFood && g.snake.Head() == g.food {
		g.snake.Grow()
		g.score++
		g.logger.Debug("food eaten", "score", g.score, "at", g.food)
		g.placeFood()

		if g.progression && g.score%g.SpeedStep() == 0 && g.speed < g.timing.MaxSpeed {
			g.speed++
			g.logger.Debug("speed up", "speed", g.speed, "interval", g.Interval())
		}
	}

	g.render()
}

func (g *Game) end(reason Reason) {
	g.state = StateGameOver
	g.reason = reason
}

// Result returns the game's outcome so far.
func (g *Game) Result() Result {
	return Result{
		Score:  g.score,
		Speed:  g.speed,
		Length: g.snake.Len(),
		Steps:  g.steps,
		Reason: g.reason,
	}
}

// State returns the current phase.
func (g *Game) State() State {
	return g.state
}

// Score returns the number of food items eaten.
func (g *Game) Score() int {
	return g.score
}

// Speed returns the current speed level.
func (g *Game) Speed() int {
	return g.speed
}

// Snake returns the game's snake. Callers must not mutate it while Run
// is in progress.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the food cell and whether one is placed.
func (g *Game) Food() (core.Point, bool) {
	return g.food, g.hasFood
}

// Resize asks the game to draw its next frame at w×h. It may be called
// from any goroutine; the game's own state is left alone. Non-positive
// sizes are ignored.
func (g *Game) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	g.resize.Store(uint64(uint32(w))<<32 | uint64(uint32(h)))
}

// Board returns the board dimensions.
func (g *Game) Board() (width, height int) {
	return int(g.width), int(g.height)
}

func (r Result) String() string {
	return fmt.Sprintf("score %d, speed %d, length %d after %d steps (%s)", r.Score, r.Speed, r.Length, r.Steps, r.Reason)
}
