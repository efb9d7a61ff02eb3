// Package ratelimit provides fixed-window request limiting keyed by client
// address. The Limiter is an injected capability: handlers receive an
// instance rather than reaching for process-wide state, so a single-process
// deployment can use the in-memory store and a multi-process deployment can
// share counters through Redis.
package ratelimit

import (
	"context"
	"time"
)

// Config holds the window parameters shared by all stores.
type Config struct {
	// Limit is the maximum number of requests per key per window.
	Limit int
	// Window is the fixed interval after which a key's count resets.
	Window time.Duration
}

// Result reports the outcome of recording one request.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Limiter records a request for key and reports whether it is within the
// limit. Check and record are a single atomic step so two simultaneous
// requests can never both observe a stale count.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}
