package text_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/pomo/internal/clock"
	"github.com/slok/pomo/internal/clock/fake"
	"github.com/slok/pomo/internal/countdown"
	"github.com/slok/pomo/internal/countdown/text"
	"github.com/slok/pomo/internal/log"
	"github.com/slok/pomo/internal/model"
	"github.com/slok/pomo/internal/terminal"
)

func TestNewRenderer(t *testing.T) {
	tests := map[string]struct {
		config text.RendererConfig
		expErr bool
	}{
		"A valid config should create the renderer.": {
			config: text.RendererConfig{Out: &bytes.Buffer{}},
		},
		"Missing out should fail.": {
			config: text.RendererConfig{},
			expErr: true,
		},
		"Negative end pause should fail.": {
			config: text.RendererConfig{Out: &bytes.Buffer{}, EndPause: -time.Second},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			r, err := text.NewRenderer(test.config)

			if test.expErr {
				assert.Error(t, err)
				assert.Nil(t, r)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, r)
			}
		})
	}
}

func TestRendererRender(t *testing.T) {
	tests := map[string]struct {
		endPause       time.Duration
		noEndPause     bool
		cancelOnCall   int
		req            countdown.Request
		expResult      model.StageResult
		expTicks       int
		expSleeps      []time.Duration
		expClears      int
		expDings       int
		expStopped     bool
		expContains    []string
		expNotContains []string
	}{
		"A zero duration should render a single tick.": {
			noEndPause: true,
			req:        countdown.Request{Stage: model.StageWork, Duration: 0},
			expResult:  model.StageResultCompleted,
			expTicks:   1,
			expSleeps:  []time.Duration{time.Second, 0},
			expClears:  1,
			expDings:   1,
			expContains: []string{
				"[WORK] Time Remaining: 00:00",
			},
		},
		"A negative duration should be clamped to zero.": {
			noEndPause: true,
			req:        countdown.Request{Stage: model.StageShortBreak, Duration: -10 * time.Second},
			expResult:  model.StageResultCompleted,
			expTicks:   1,
			expSleeps:  []time.Duration{time.Second, 0},
			expClears:  1,
			expDings:   1,
			expContains: []string{
				"[SHORT BREAK] Time Remaining: 00:00",
			},
		},
		"A one second countdown with no end pause should ding once.": {
			noEndPause: true,
			req:        countdown.Request{Stage: model.StageWork, Duration: time.Second},
			expResult:  model.StageResultCompleted,
			expTicks:   2,
			expSleeps:  []time.Duration{time.Second, time.Second, 0},
			expClears:  1,
			expDings:   1,
			expContains: []string{
				"\r[WORK] Time Remaining: 00:01\x1b[K",
				"\r[WORK] Time Remaining: 00:00\x1b[K",
				"[DING DING!] WORK is over! Starting next stage...",
				"***** Take a deep breath and switch tasks *****",
			},
		},
		"The default end pause should be used when not set.": {
			req:       countdown.Request{Stage: model.StageLongBreak, Duration: 2 * time.Second},
			expResult: model.StageResultCompleted,
			expTicks:  3,
			expSleeps: []time.Duration{time.Second, time.Second, time.Second, text.DefaultEndPause},
			expClears: 1,
			expDings:  1,
			expContains: []string{
				"[LONG BREAK] Time Remaining: 00:02",
				"[DING DING!] LONG BREAK is over!",
			},
		},
		"A custom end pause should be used.": {
			endPause:  5 * time.Second,
			req:       countdown.Request{Stage: model.StageWork, Duration: 0},
			expResult: model.StageResultCompleted,
			expTicks:  1,
			expSleeps: []time.Duration{time.Second, 5 * time.Second},
			expClears: 1,
			expDings:  1,
		},
		"Minutes should be rendered on the clock.": {
			noEndPause: true,
			req:        countdown.Request{Stage: model.StageWork, Duration: 61 * time.Second},
			expResult:  model.StageResultCompleted,
			expTicks:   62,
			expClears:  1,
			expDings:   1,
			expContains: []string{
				"Time Remaining: 01:01",
				"Time Remaining: 01:00",
				"Time Remaining: 00:59",
			},
		},
		"Sub second durations should be truncated.": {
			noEndPause: true,
			req:        countdown.Request{Stage: model.StageWork, Duration: 1900 * time.Millisecond},
			expResult:  model.StageResultCompleted,
			expTicks:   2,
			expSleeps:  []time.Duration{time.Second, time.Second, 0},
			expClears:  1,
			expDings:   1,
		},
		"The header should show the completed pomodoros.": {
			noEndPause: true,
			req:        countdown.Request{Stage: model.StageShortBreak, Duration: 0, Completed: 3},
			expResult:  model.StageResultCompleted,
			expTicks:   1,
			expSleeps:  []time.Duration{time.Second, 0},
			expClears:  1,
			expDings:   1,
			expContains: []string{
				"--- Pomodoro Timer --- | Completed Pomodoros: 3\n",
			},
		},
		"An interruption during the countdown should stop without the banner.": {
			noEndPause:   true,
			cancelOnCall: 2,
			req:          countdown.Request{Stage: model.StageWork, Duration: 5 * time.Second},
			expResult:    model.StageResultCancelled,
			expTicks:     2,
			expSleeps:    []time.Duration{time.Second, time.Second},
			expClears:    1,
			expDings:     0,
			expStopped:   true,
			expNotContains: []string{
				"Time Remaining: 00:03",
			},
		},
		"An interruption on the first tick should stop.": {
			cancelOnCall: 1,
			req:          countdown.Request{Stage: model.StageLongBreak, Duration: time.Minute},
			expResult:    model.StageResultCancelled,
			expTicks:     1,
			expSleeps:    []time.Duration{time.Second},
			expClears:    1,
			expStopped:   true,
		},
		"An interruption during the end pause should stop after the banner.": {
			cancelOnCall: 3,
			req:          countdown.Request{Stage: model.StageWork, Duration: time.Second},
			expResult:    model.StageResultCancelled,
			expTicks:     2,
			expSleeps:    []time.Duration{time.Second, time.Second, text.DefaultEndPause},
			expClears:    2,
			expDings:     1,
			expStopped:   true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			var out bytes.Buffer
			clears := 0
			sleeper := fake.NewSleeper(fake.SleeperConfig{CancelOnCall: test.cancelOnCall})
			r, err := text.NewRenderer(text.RendererConfig{
				Out:        &out,
				Clearer:    terminal.ClearerFunc(func() error { clears++; return nil }),
				Sleeper:    sleeper,
				EndPause:   test.endPause,
				NoEndPause: test.noEndPause,
				Logger:     log.Noop,
			})
			require.NoError(err)

			result, err := r.Render(context.Background(), test.req)
			require.NoError(err)

			got := out.String()
			assert.Equal(test.expResult, result)
			assert.Equal(test.expTicks, strings.Count(got, "Time Remaining:"))
			assert.Equal(test.expDings, strings.Count(got, "DING DING"))
			assert.Equal(test.expClears, clears)
			assert.Equal(test.expStopped, strings.Contains(got, "Timer stopped by user. Goodbye!"))
			if test.expSleeps != nil {
				assert.Equal(test.expSleeps, sleeper.Calls())
			}
			for _, exp := range test.expContains {
				assert.Contains(got, exp)
			}
			for _, exp := range test.expNotContains {
				assert.NotContains(got, exp)
			}
		})
	}
}

func TestRendererRenderTickCount(t *testing.T) {
	// For any non negative duration D the renderer writes D+1 ticks from D down to 0.
	for d := 0; d <= 120; d++ {
		var out bytes.Buffer
		r, err := text.NewRenderer(text.RendererConfig{
			Out:        &out,
			Sleeper:    fake.NewSleeper(fake.SleeperConfig{}),
			NoEndPause: true,
		})
		require.NoError(t, err)

		result, err := r.Render(context.Background(), countdown.Request{Stage: model.StageWork, Duration: time.Duration(d) * time.Second})
		require.NoError(t, err)
		require.Equal(t, model.StageResultCompleted, result)

		got := out.String()
		require.Equal(t, d+1, strings.Count(got, "Time Remaining:"), "duration %d", d)

		// Ticks must be in descending order and before the banner.
		last := -1
		for s := d; s >= 0; s-- {
			idx := strings.Index(got, "Time Remaining: "+countdown.FormatClock(s))
			require.Greater(t, idx, last, "duration %d, second %d", d, s)
			last = idx
		}
		assert.Greater(t, strings.Index(got, "DING DING"), last)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRendererRenderErrors(t *testing.T) {
	tests := map[string]struct {
		config func() text.RendererConfig
		req    countdown.Request
	}{
		"An unknown stage should fail.": {
			config: func() text.RendererConfig {
				return text.RendererConfig{Out: &bytes.Buffer{}, Sleeper: fake.NewSleeper(fake.SleeperConfig{})}
			},
			req: countdown.Request{Stage: model.Stage("nap")},
		},
		"A display write error should fail.": {
			config: func() text.RendererConfig {
				return text.RendererConfig{Out: failingWriter{}, Sleeper: fake.NewSleeper(fake.SleeperConfig{})}
			},
			req: countdown.Request{Stage: model.StageWork},
		},
		"A sleeper error that is not an interruption should fail.": {
			config: func() text.RendererConfig {
				return text.RendererConfig{
					Out: &bytes.Buffer{},
					Sleeper: clock.SleeperFunc(func(context.Context, time.Duration) error {
						return errors.New("clock is broken")
					}),
				}
			},
			req: countdown.Request{Stage: model.StageWork, Duration: time.Second},
		},
		"A clear error should fail.": {
			config: func() text.RendererConfig {
				return text.RendererConfig{
					Out:     &bytes.Buffer{},
					Sleeper: fake.NewSleeper(fake.SleeperConfig{}),
					Clearer: terminal.ClearerFunc(func() error { return errors.New("no tty") }),
				}
			},
			req: countdown.Request{Stage: model.StageWork},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			r, err := text.NewRenderer(test.config())
			require.NoError(t, err)

			result, err := r.Render(context.Background(), test.req)

			assert.Error(t, err)
			assert.Empty(t, result)
		})
	}
}

func TestRendererRenderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	r, err := text.NewRenderer(text.RendererConfig{Out: &out, Sleeper: clock.Real})
	require.NoError(t, err)

	result, err := r.Render(ctx, countdown.Request{Stage: model.StageWork, Duration: time.Hour})

	require.NoError(t, err)
	assert.Equal(t, model.StageResultCancelled, result)
	assert.Contains(t, out.String(), "Timer stopped by user. Goodbye!")
}
