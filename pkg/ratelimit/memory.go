package ratelimit

import (
	"context"
	"sync"
	"time"
)

// memoryEntry tracks request count for a key within the current window
type memoryEntry struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is a fixed-window limiter backed by an in-process map.
// Counters are local to the running process; multiple instances behind a
// load balancer do not share a limit.
type MemoryLimiter struct {
	cfg     Config
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

// NewMemory creates an in-memory limiter and starts a background sweep that
// drops expired keys.
func NewMemory(cfg Config) *MemoryLimiter {
	l := &MemoryLimiter{
		cfg:     cfg,
		entries: make(map[string]*memoryEntry),
	}
	go l.cleanup()
	return l
}

// Allow implements Limiter. The mutex makes the read-modify-write atomic so
// concurrent requests from the same key cannot overshoot the limit.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok || now.After(entry.resetAt) {
		entry = &memoryEntry{resetAt: now.Add(l.cfg.Window)}
		l.entries[key] = entry
	}
	entry.count++

	remaining := l.cfg.Limit - entry.count
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   entry.count <= l.cfg.Limit,
		Remaining: remaining,
		ResetAt:   entry.resetAt,
	}, nil
}

// cleanup periodically removes entries whose window has expired
func (l *MemoryLimiter) cleanup() {
	interval := l.cfg.Window
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		for key, entry := range l.entries {
			if now.After(entry.resetAt) {
				delete(l.entries, key)
			}
		}
		l.mu.Unlock()
	}
}
