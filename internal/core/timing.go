package core

import "time"

// DefaultFrameDelay approximates 60 frames per second.
const DefaultFrameDelay = 16 * time.Millisecond

// Pacer blocks between frames.
type Pacer interface {
	Pace()
}

// FixedDelay sleeps for a constant duration after every frame. It does not
// compensate for the time spent drawing and updating.
type FixedDelay time.Duration

// Pace sleeps for the configured delay.
func (d FixedDelay) Pace() {
	time.Sleep(time.Duration(d))
}

// NoDelay returns immediately. Used by headless simulation.
type NoDelay struct{}

// Pace does nothing.
func (NoDelay) Pace() {}

// TickRate converts a frame delay to whole frames per second, at least 1.
func TickRate(delay time.Duration) int {
	if delay <= 0 {
		return 60
	}
	rate := int(time.Second / delay)
	if rate < 1 {
		return 1
	}
	return rate
}
