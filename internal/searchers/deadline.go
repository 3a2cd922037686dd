package searchers

import (
	"math"
	"time"
)

// DefaultThreshold is the default safety margin: searches abort when the time left drops below it.
const DefaultThreshold = 10 * time.Millisecond

// TimeLeft returns the time remaining for the current turn. It may be negative once the turn time is over.
//
// It is sampled repeatedly during a search, and it must be monotonic (never increase).
type TimeLeft func() time.Duration

// Expired returns whether the time left is below the threshold. A nil TimeLeft never expires.
func (tl TimeLeft) Expired(threshold time.Duration) bool {
	return tl != nil && tl() < threshold
}

// Unlimited is a TimeLeft that never expires.
func Unlimited() time.Duration { return time.Duration(math.MaxInt64) }

// NewTurnTimer returns a TimeLeft that counts down budget starting now.
// It uses the monotonic clock.
func NewTurnTimer(budget time.Duration) TimeLeft {
	start := time.Now()
	return func() time.Duration {
		return budget - time.Since(start)
	}
}

// UntilDeadline returns a TimeLeft that reports the time until deadline.
func UntilDeadline(deadline time.Time) TimeLeft {
	return func() time.Duration {
		return time.Until(deadline)
	}
}
