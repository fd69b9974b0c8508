package geminiservice

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter bounds LLM calls per minute and per day. Allow never blocks: a
// request that would have to wait is refused.
type Limiter struct {
	mu      sync.Mutex
	windows []*rate.Limiter
	now     func() time.Time
}

// NewLimiter builds a limiter with perMinute and perDay budgets. A budget
// <= 0 disables that window.
func NewLimiter(perMinute, perDay int) *Limiter {
	l := &Limiter{now: time.Now}
	if perMinute > 0 {
		l.windows = append(l.windows, rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute))
	}
	if perDay > 0 {
		l.windows = append(l.windows, rate.NewLimiter(rate.Every(24*time.Hour/time.Duration(perDay)), perDay))
	}
	return l
}

// Allow consumes one token from every window, or none if any window is
// exhausted.
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	reservations := make([]*rate.Reservation, 0, len(l.windows))
	for _, w := range l.windows {
		r := w.ReserveN(now, 1)
		if !r.OK() || r.DelayFrom(now) > 0 {
			r.CancelAt(now)
			for _, prev := range reservations {
				prev.CancelAt(now)
			}
			return false
		}
		reservations = append(reservations, r)
	}
	return true
}
