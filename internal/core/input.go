package core

import (
	"fmt"
	"time"
)

// CommandKind distinguishes the commands a player can issue.
type CommandKind uint8

const (
	CommandQuit CommandKind = iota
	CommandTurn
)

// Command is one request from the input pipeline.
type Command struct {
	Kind CommandKind
	Dir  Direction // only meaningful for CommandTurn
}

// Quit returns the quit command.
func Quit() Command {
	return Command{Kind: CommandQuit}
}

// Turn returns a command asking the snake to head towards d.
func Turn(d Direction) Command {
	return Command{Kind: CommandTurn, Dir: d}
}

func (c Command) String() string {
	if c.Kind == CommandQuit {
		return "quit"
	}
	return fmt.Sprintf("turn %s", c.Dir)
}

// CommandSource is a non-blocking poll for player commands.
//
// TryNext returns the next pending command, if any. budget is the time the
// caller has left before it must act; implementations may wait for input
// but must return promptly and never past the budget.
type CommandSource interface {
	TryNext(budget time.Duration) (Command, bool)
}

// RenderSink accepts finished frames. Present is fire-and-forget: the sink
// must not block and the caller does not reuse the frame afterwards.
type RenderSink interface {
	Present(frame *Screen)
}

// NopSource never yields a command.
type NopSource struct{}

// TryNext implements CommandSource.
func (NopSource) TryNext(time.Duration) (Command, bool) {
	return Command{}, false
}

// NopSink discards every frame.
type NopSink struct{}

// Present implements RenderSink.
func (NopSink) Present(*Screen) {}
