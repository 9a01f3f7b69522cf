package clock

import (
	"context"
	"sync"
	"time"
)

var bootOnce sync.Once

// Boot starts the interrupt source for the System clock. Only the first
// call has any effect; the source runs until ctx is done.
func Boot(ctx context.Context) {
	bootOnce.Do(func() {
		StartInterrupts(ctx, system)
	})
}

// StartInterrupts emulates a periodic hardware timer at c's rate, clamped
// to [1, MaxRate]. The handler does nothing but call Tick, so it never
// blocks or faults.
func StartInterrupts(ctx context.Context, c *TickClock) {
	rate := max(1, min(int(c.rate), MaxRate))
	period := time.Second / time.Duration(rate)
	ticker := time.NewTicker(period)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Tick()
			case <-ctx.Done():
				return
			}
		}
	}()
}
