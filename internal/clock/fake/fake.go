package fake

import (
	"context"
	"sync"
	"time"
)

// SleeperConfig is the configuration for the fake sleeper.
type SleeperConfig struct {
	// CancelOnCall makes the N-th call (1 based) return context.Canceled.
	// Zero disables it.
	CancelOnCall int
	// OnCancel is called when the sleeper reaches CancelOnCall, before returning.
	// Use it to cancel the caller context and simulate a real interruption.
	OnCancel func()
}

// Sleeper is a fake clock.Sleeper that doesn't wait, it only records the
// requested durations.
type Sleeper struct {
	cfg   SleeperConfig
	calls []time.Duration
	mu    sync.Mutex
}

// NewSleeper returns a new fake sleeper.
func NewSleeper(cfg SleeperConfig) *Sleeper {
	return &Sleeper{cfg: cfg}
}

// Sleep records the call and returns immediately.
func (s *Sleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.calls = append(s.calls, d)
	n := len(s.calls)
	s.mu.Unlock()

	if s.cfg.CancelOnCall > 0 && n == s.cfg.CancelOnCall {
		if s.cfg.OnCancel != nil {
			s.cfg.OnCancel()
		}
		return context.Canceled
	}

	return ctx.Err()
}

// Calls returns the requested sleep durations in order.
func (s *Sleeper) Calls() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	calls := make([]time.Duration, len(s.calls))
	copy(calls, s.calls)
	return calls
}

// Total returns the sum of all requested sleeps.
func (s *Sleeper) Total() time.Duration {
	var total time.Duration
	for _, d := range s.Calls() {
		total += d
	}
	return total
}
