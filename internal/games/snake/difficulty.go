package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// CalculateInterval returns the step interval for a speed level:
//
//	min + ((max - min) / maxSpeed) * (maxSpeed - speed)
//
// in whole milliseconds. Speed 0 gives max, speed maxSpeed gives min.
// Speeds outside [0, maxSpeed] are clamped.
func CalculateInterval(speed int, t config.TimingConfig) time.Duration {
	speed = max(0, min(speed, t.MaxSpeed))
	perLevel := (t.MaxIntervalMS - t.MinIntervalMS) / t.MaxSpeed
	ms := t.MinIntervalMS + perLevel*(t.MaxSpeed-speed)
	return time.Duration(ms) * time.Millisecond
}

// Interval returns the step interval at the current speed.
func (g *Game) Interval() time.Duration {
	return CalculateInterval(g.speed, g.timing)
}

// SpeedStep returns how many points separate two speed-ups: the board
// area divided by the maximum speed, at least 1. It is derived from the
// board every time so it cannot drift from the configuration.
func (g *Game) SpeedStep() int {
	return max(1, int(g.width)*int(g.height)/g.timing.MaxSpeed)
}
