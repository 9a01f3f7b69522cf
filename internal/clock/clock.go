// Package clock provides the process-wide monotonic tick counter and the
// Instant type used for all game timing.
//
// The counter is driven by a periodic interrupt (emulated by a ticker
// goroutine, see Boot) and read by any number of game loops. Elapsed-time
// math wraps with the counter, so results are correct as long as the true
// elapsed time is shorter than one counter period: 2^32 ticks, which at the
// default 1 kHz rate is about 49.7 days. Longer gaps alias silently.
package clock

import (
	"sync/atomic"
	"time"
)

// DefaultRate is the nominal interrupt rate in ticks per second.
const DefaultRate = 1000

// MaxRate is the fastest supported rate: one tick per microsecond.
const MaxRate = 1_000_000

// Clock is the read side of a tick clock. Game code depends on this
// interface so tests can substitute a Manual clock.
type Clock interface {
	// Now returns a snapshot of the current tick count. It never blocks.
	Now() Instant

	// Elapsed returns the time passed since the given instant,
	// computed with wrapping arithmetic.
	Elapsed(since Instant) time.Duration
}

// TickClock is a tick counter with a single writer (the interrupt handler)
// and many readers. Relaxed atomic access is enough: the counter is the
// only state and no other value has to stay consistent with it.
type TickClock struct {
	ticks atomic.Uint32
	rate  uint32
}

// New creates a tick clock counting at rate ticks per second.
// A non-positive rate falls back to DefaultRate; rates above MaxRate are
// capped.
func New(rate int) *TickClock {
	if rate <= 0 {
		rate = DefaultRate
	}
	return &TickClock{rate: uint32(min(rate, MaxRate))}
}

var system = New(DefaultRate)

// System returns the process-wide tick clock. It starts at zero and is
// never reset.
func System() *TickClock {
	return system
}

// Tick advances the counter by one, wrapping on overflow.
// Only the interrupt handler calls this.
func (c *TickClock) Tick() {
	c.ticks.Add(1)
}

// Now returns the current tick count as an Instant.
func (c *TickClock) Now() Instant {
	return Instant{ticks: c.ticks.Load(), rate: c.rate}
}

// Elapsed returns Now() - since.
func (c *TickClock) Elapsed(since Instant) time.Duration {
	return c.Now().Sub(since)
}

// Rate returns the clock's tick rate in ticks per second.
func (c *TickClock) Rate() int {
	return int(c.rate)
}

var _ Clock = (*TickClock)(nil)
