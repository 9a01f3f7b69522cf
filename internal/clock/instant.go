package clock

import (
	"fmt"
	"time"
)

// Instant is an immutable snapshot of a tick counter together with the
// counter's rate.
type Instant struct {
	ticks uint32
	rate  uint32
}

// NewInstant builds an instant from a raw tick count.
func NewInstant(ticks uint32, rate int) Instant {
	if rate <= 0 {
		rate = DefaultRate
	}
	return Instant{ticks: ticks, rate: uint32(rate)}
}

// Ticks returns the raw counter value.
func (i Instant) Ticks() uint32 {
	return i.ticks
}

// Rate returns the tick rate in ticks per second.
func (i Instant) Rate() int {
	return int(i.rate)
}

// TicksSince returns i - earlier in ticks using modular subtraction.
func (i Instant) TicksSince(earlier Instant) uint32 {
	return i.ticks - earlier.ticks
}

// Sub returns the duration between earlier and i. The subtraction wraps,
// so a counter overflow between the two samples does not corrupt the
// result.
func (i Instant) Sub(earlier Instant) time.Duration {
	return ticksToDuration(i.TicksSince(earlier), i.rate)
}

// Add returns the instant d after i, rounded down to whole ticks.
func (i Instant) Add(d time.Duration) Instant {
	n := uint64(d) * uint64(i.rate) / uint64(time.Second)
	return Instant{ticks: i.ticks + uint32(n), rate: i.rate}
}

func (i Instant) String() string {
	return fmt.Sprintf("tick %d @%dHz", i.ticks, i.rate)
}

func ticksToDuration(n uint32, rate uint32) time.Duration {
	if rate == 0 {
		rate = DefaultRate
	}
	return time.Duration(uint64(n) * uint64(time.Second) / uint64(rate))
}
