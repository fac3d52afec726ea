package kociemba

import (
	"context"
	"time"
)

// Option configures a solve.
type Option func(*config)

type config struct {
	maxMoves int
	timeout  time.Duration
	ctx      context.Context
}

func defaultConfig() *config {
	return &config{
		maxMoves: DefaultMaxMoves,
		ctx:      context.Background(),
	}
}

// WithMaxMoves caps the total length of the returned solution. The
// search fails with ErrSearchExhausted if no solution exists within
// the cap; anything at or above 20 suffices for every reachable
// state given enough time.
func WithMaxMoves(n int) Option {
	return func(c *config) {
		c.maxMoves = n
	}
}

// WithTimeout bounds the wall-clock time of a solve. When the budget
// expires before any solution is found, Solve fails with ErrTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithContext attaches a context for cancellation. The search polls
// it at a fixed node-count interval, so cancellation takes effect
// promptly even mid-phase.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		c.ctx = ctx
	}
}
