// Package ratelimit provides a sliding-window request limiter used to
// guard the refresh and alert endpoints against hammering.
package ratelimit

import (
	"sync"
	"time"
)

type Limiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
}

func NewLimiter() *Limiter {
	l := &Limiter{attempts: make(map[string][]time.Time)}
	go l.cleanup()
	return l
}

// Allow records an attempt for key and reports whether it stays within
// maxAttempts per window.
func (l *Limiter) Allow(key string, maxAttempts int, window time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-window)

	var recent []time.Time
	for _, ts := range l.attempts[key] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= maxAttempts {
		l.attempts[key] = recent
		return false
	}

	l.attempts[key] = append(recent, now)
	return true
}

func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, key)
}

// cleanup drops keys whose attempts have all aged out, bounding memory
// across long uptimes.
func (l *Limiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		cutoff := time.Now().Add(-24 * time.Hour)
		for key, attempts := range l.attempts {
			var recent []time.Time
			for _, ts := range attempts {
				if ts.After(cutoff) {
					recent = append(recent, ts)
				}
			}
			if len(recent) == 0 {
				delete(l.attempts, key)
			} else {
				l.attempts[key] = recent
			}
		}
		l.mu.Unlock()
	}
}
