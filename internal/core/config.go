package core

// RuntimeConfig carries the per-session values the platform passes to a
// game at construction.
type RuntimeConfig struct {
	ScreenW int   // Display width in characters
	ScreenH int   // Display height in characters
	Seed    int64 // RNG seed; 0 means seed from the current time
}

// DefaultConfig returns a RuntimeConfig sized like a VGA text buffer.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 25,
		Seed:    0,
	}
}
