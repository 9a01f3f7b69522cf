package tui

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultQueueSize is the command buffer used when none is given.
const DefaultQueueSize = 16

// ChannelSource is a core.CommandSource fed by the UI goroutine through
// a buffered channel.
type ChannelSource struct {
	ch    chan core.Command
	slice time.Duration
}

// NewChannelSource creates a source buffering up to size commands. TryNext
// blocks for at most slice per call; a zero slice makes it non-blocking.
func NewChannelSource(size int, slice time.Duration) *ChannelSource {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &ChannelSource{
		ch:    make(chan core.Command, size),
		slice: max(slice, 0),
	}
}

// Push enqueues cmd without blocking. It reports false if the buffer is
// full and the command was dropped.
func (s *ChannelSource) Push(cmd core.Command) bool {
	select {
	case s.ch <- cmd:
		return true
	default:
		return false
	}
}

// TryNext returns the next queued command, waiting no longer than
// min(budget, slice) for one to arrive.
func (s *ChannelSource) TryNext(budget time.Duration) (core.Command, bool) {
	select {
	case cmd := <-s.ch:
		return cmd, true
	default:
	}

	wait := min(budget, s.slice)
	if wait <= 0 {
		return core.Command{}, false
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case cmd := <-s.ch:
		return cmd, true
	case <-timer.C:
		return core.Command{}, false
	}
}

// Len returns the number of queued commands.
func (s *ChannelSource) Len() int {
	return len(s.ch)
}

var _ core.CommandSource = (*ChannelSource)(nil)
