package tui

import (
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// FrameBox is a core.RenderSink that keeps only the most recent frame,
// plus the game's result once it has finished. The game goroutine writes
// and the UI goroutine reads.
type FrameBox struct {
	mu       sync.Mutex
	frame    *core.Screen
	seq      uint64
	result   snake.Result
	finished bool
}

// NewFrameBox creates an empty box.
func NewFrameBox() *FrameBox {
	return &FrameBox{}
}

// Present replaces the stored frame.
func (b *FrameBox) Present(frame *core.Screen) {
	b.mu.Lock()
	b.frame = frame
	b.seq++
	b.mu.Unlock()
}

// Latest returns the newest frame and its sequence number. The sequence
// is zero until the first frame arrives.
func (b *FrameBox) Latest() (*core.Screen, uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frame, b.seq
}

// Finish records the game's result.
func (b *FrameBox) Finish(res snake.Result) {
	b.mu.Lock()
	b.result = res
	b.finished = true
	b.mu.Unlock()
}

// Result returns the game's result, if it has finished.
func (b *FrameBox) Result() (snake.Result, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.result, b.finished
}

var _ core.RenderSink = (*FrameBox)(nil)
