package ratelimit

import (
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Limiter gates repeated submissions from the same sender identity within a
// fixed time window. State lives in process memory only; it is best-effort
// and does not survive restarts. Stale entries expire with the cache.
type Limiter struct {
	window time.Duration
	max    int

	mu    sync.Mutex
	store *cache.Cache
}

// New creates a limiter allowing max submissions per window
func New(max int, window time.Duration) *Limiter {
	return &Limiter{
		window: window,
		max:    max,
		store:  cache.New(window, 2*window),
	}
}

// Allow records one submission for identity and reports whether it stays
// within the limit. The window is fixed from the first submission; once it
// elapses the count resets to 1. Identity is case-normalized.
func (l *Limiter) Allow(identity string) bool {
	key := strings.ToLower(strings.TrimSpace(identity))

	l.mu.Lock()
	defer l.mu.Unlock()

	count, err := l.store.IncrementInt(key, 1)
	if err != nil {
		// No entry yet, or the previous window elapsed
		l.store.Set(key, 1, l.window)
		return true
	}
	return count <= l.max
}
