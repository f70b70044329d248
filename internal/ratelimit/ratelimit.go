package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	lim  *rate.Limiter
	seen time.Time
}

// Limiter hands out a token-bucket limiter per key (here, the username a
// credential operation acts on).
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	r       rate.Limit
	burst   int
}

func New(rps float64, burst int) *Limiter {
	l := &Limiter{
		entries: make(map[string]*entry),
		r:       rate.Limit(rps),
		burst:   burst,
	}
	// cleanup stale entries every minute
	go func() {
		for {
			time.Sleep(time.Minute)
			l.mu.Lock()
			for k, e := range l.entries {
				if time.Since(e.seen) > 3*time.Minute {
					delete(l.entries, k)
				}
			}
			l.mu.Unlock()
		}
	}()
	return l
}

// Allow reports whether key has budget for one more attempt.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{lim: rate.NewLimiter(l.r, l.burst)}
		l.entries[key] = e
	}
	e.seen = time.Now()
	return e.lim.Allow()
}
