package security

import (
	"log/slog"
	"sync"
	"time"
)

// AttemptLimiter is a sliding-window brute-force guard keyed per username.
// Allow records the attempt as a side effect of being asked, whether or not
// the caller's authentication ultimately succeeds; timestamps older than the
// window are pruned on every call.
type AttemptLimiter struct {
	mu          sync.Mutex
	attempts    map[string][]time.Time
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

func NewAttemptLimiter(maxAttempts int, window time.Duration) *AttemptLimiter {
	return &AttemptLimiter{
		attempts:    make(map[string][]time.Time),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// Allow reports whether the identity may attempt authentication and records
// the attempt when it may.
func (l *AttemptLimiter) Allow(identity string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.attempts[identity][:0]
	for _, t := range l.attempts[identity] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.maxAttempts {
		l.attempts[identity] = recent
		slog.Warn("Authentication rate limit exceeded", "username", identity)
		return false
	}

	l.attempts[identity] = append(recent, now)
	return true
}

// Clear removes all recorded attempts for an identity, so a successful
// login is not penalized for earlier failures.
func (l *AttemptLimiter) Clear(identity string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, identity)
}
