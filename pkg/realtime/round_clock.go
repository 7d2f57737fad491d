package realtime

import "time"

// RoundClock tracks the wall-clock start of a single timed round. It holds no
// game state; the session composes it and asks Expired with an explicit now,
// so expiry is observed lazily on access rather than by a background timer.
// A cleared clock reads as expired, which doubles as the "round not yet
// begun" state between rounds.
type RoundClock struct {
	StartedAt time.Time
}

// Begin records now as the round start.
func (c *RoundClock) Begin(now time.Time) {
	c.StartedAt = now
}

// Clear resets the clock to the not-active state.
func (c *RoundClock) Clear() {
	c.StartedAt = time.Time{}
}

// Active reports whether a round start has been recorded.
func (c *RoundClock) Active() bool {
	return !c.StartedAt.IsZero()
}

// Expired reports whether more than length has elapsed since Begin. An
// inactive clock is always expired.
func (c *RoundClock) Expired(now time.Time, length time.Duration) bool {
	if c.StartedAt.IsZero() {
		return true
	}
	return now.Sub(c.StartedAt) > length
}

// Remaining returns the time left in the round, clamped at zero. An inactive
// clock has nothing remaining.
func (c *RoundClock) Remaining(now time.Time, length time.Duration) time.Duration {
	if c.StartedAt.IsZero() {
		return 0
	}
	left := length - now.Sub(c.StartedAt)
	if left < 0 {
		return 0
	}
	return left
}
