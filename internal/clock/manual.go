package clock

import (
	"sync/atomic"
	"time"
)

// Manual is a Clock whose counter only moves when told to. It shares the
// wrapping semantics of TickClock and is safe for concurrent use.
type Manual struct {
	ticks atomic.Uint32
	rate  uint32
}

// NewManual creates a manual clock at rate ticks per second, starting at
// the given counter value.
func NewManual(rate int, start uint32) *Manual {
	if rate <= 0 {
		rate = DefaultRate
	}
	m := &Manual{rate: uint32(rate)}
	m.ticks.Store(start)
	return m
}

// Advance moves the counter forward by n ticks, wrapping on overflow.
func (m *Manual) Advance(n uint32) {
	m.ticks.Add(n)
}

// AdvanceBy moves the counter forward by d, rounded down to whole ticks.
func (m *Manual) AdvanceBy(d time.Duration) {
	m.Advance(uint32(uint64(d) * uint64(m.rate) / uint64(time.Second)))
}

// Set overwrites the counter.
func (m *Manual) Set(ticks uint32) {
	m.ticks.Store(ticks)
}

// Now implements Clock.
func (m *Manual) Now() Instant {
	return Instant{ticks: m.ticks.Load(), rate: m.rate}
}

// Elapsed implements Clock.
func (m *Manual) Elapsed(since Instant) time.Duration {
	return m.Now().Sub(since)
}

var _ Clock = (*Manual)(nil)
