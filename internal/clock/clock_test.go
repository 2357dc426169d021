package clock_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/slok/pomo/internal/clock"
)

func TestRealSleep(t *testing.T) {
	tests := map[string]struct {
		ctx    func() context.Context
		d      time.Duration
		expErr error
	}{
		"A short sleep should finish without error.": {
			ctx: context.Background,
			d:   time.Millisecond,
		},
		"A zero sleep should return right away.": {
			ctx: context.Background,
			d:   0,
		},
		"A cancelled context should return the context error.": {
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			d:      time.Hour,
			expErr: context.Canceled,
		},
		"A context that ends while sleeping should interrupt the sleep.": {
			ctx: func() context.Context {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
				t.Cleanup(cancel)
				return ctx
			},
			d:      time.Hour,
			expErr: context.DeadlineExceeded,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := clock.Real.Sleep(test.ctx(), test.d)

			if test.expErr != nil {
				assert.ErrorIs(t, err, test.expErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSleeperFunc(t *testing.T) {
	var got time.Duration
	s := clock.SleeperFunc(func(_ context.Context, d time.Duration) error {
		got = d
		return nil
	})

	err := s.Sleep(context.Background(), 3*time.Second)

	assert.NoError(t, err)
	assert.Equal(t, 3*time.Second, got)
}
