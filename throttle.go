package cubescan

import (
	"sync"
	"time"
)

// Throttle adapts how often the caller should run the scan pipeline:
// slow runs lower the rate, a streak of fast runs raises it. A Throttle
// built as a literal starts at MaxRate; a zero Streak means 5.
type Throttle struct {
	// MinRate and MaxRate bound the rate in runs per second.
	MinRate int
	MaxRate int
	// Slow is the run duration that counts as slow.
	Slow time.Duration
	// Streak is the number of consecutive fast runs that raise the rate.
	Streak int

	mu   sync.Mutex
	rate int
	fast int
}

// NewThrottle returns a throttle between minRate and maxRate runs per
// second, starting at maxRate.
func NewThrottle(minRate, maxRate int, slow time.Duration) *Throttle {
	minRate = max(1, minRate)
	maxRate = max(minRate, maxRate)
	return &Throttle{
		MinRate: minRate,
		MaxRate: maxRate,
		Slow:    slow,
		Streak:  defaultStreak,
		rate:    maxRate,
	}
}

const defaultStreak = 5

// DefaultThrottle returns a throttle between 8 and 20 runs per second that
// treats runs over 50ms as slow.
func DefaultThrottle() *Throttle {
	return NewThrottle(8, 20, 50*time.Millisecond)
}

// Observe records the duration of one pipeline run. A slow run drops the
// rate by two; Streak runs faster than half of Slow raise it by one.
func (t *Throttle) Observe(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	lo, hi := t.bounds()
	rate := t.current()
	switch {
	case d > t.Slow:
		t.rate = max(lo, rate-2)
		t.fast = 0
	case d < t.Slow/2:
		t.fast++
		streak := t.Streak
		if streak <= 0 {
			streak = defaultStreak
		}
		if t.fast >= streak {
			t.rate = min(hi, rate+1)
			t.fast = 0
		}
	default:
		t.fast = 0
	}
}

// Rate returns the current runs per second.
func (t *Throttle) Rate() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current()
}

// bounds returns MinRate and MaxRate clamped to at least one run per second.
func (t *Throttle) bounds() (lo, hi int) {
	lo = max(1, t.MinRate)
	return lo, max(lo, t.MaxRate)
}

// current returns the rate, starting at the upper bound on first use.
// Callers hold mu.
func (t *Throttle) current() int {
	lo, hi := t.bounds()
	if t.rate <= 0 {
		t.rate = hi
	}
	t.rate = min(hi, max(lo, t.rate))
	return t.rate
}

// Interval returns the delay between runs at the current rate.
func (t *Throttle) Interval() time.Duration {
	return time.Second / time.Duration(t.Rate())
}
