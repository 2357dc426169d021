package text

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/slok/pomo/internal/clock"
	"github.com/slok/pomo/internal/countdown"
	"github.com/slok/pomo/internal/log"
	"github.com/slok/pomo/internal/model"
	"github.com/slok/pomo/internal/terminal"
)

// DefaultEndPause is the pause after a stage completes, before the next one starts.
const DefaultEndPause = 3 * time.Second

const tick = time.Second

// RendererConfig is the configuration for the text renderer.
type RendererConfig struct {
	// Out is where the countdown is written.
	Out     io.Writer
	Clearer terminal.Clearer
	Sleeper clock.Sleeper
	Styles  *terminal.Styles
	// EndPause is the pause after the stage complete banner, defaults to DefaultEndPause.
	EndPause time.Duration
	// NoEndPause makes the pause after the stage complete banner zero.
	NoEndPause bool
	Logger     log.Logger
}

func (c *RendererConfig) defaults() error {
	if c.Out == nil {
		return fmt.Errorf("out writer is required")
	}

	if c.Clearer == nil {
		c.Clearer = terminal.NoopClearer
	}

	if c.Sleeper == nil {
		c.Sleeper = clock.Real
	}

	if c.EndPause < 0 {
		return fmt.Errorf("end pause can't be negative")
	}

	if c.NoEndPause {
		c.EndPause = 0
	} else if c.EndPause == 0 {
		c.EndPause = DefaultEndPause
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "countdown.Text"})

	return nil
}

// Renderer renders a countdown as a single line clock that is rewritten in place
// once per second.
type Renderer struct {
	out      io.Writer
	clearer  terminal.Clearer
	sleeper  clock.Sleeper
	styles   *terminal.Styles
	endPause time.Duration
	logger   log.Logger
}

var _ countdown.Renderer = &Renderer{}

// NewRenderer returns a new text renderer.
func NewRenderer(cfg RendererConfig) (*Renderer, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Renderer{
		out:      cfg.Out,
		clearer:  cfg.Clearer,
		sleeper:  cfg.Sleeper,
		styles:   cfg.Styles,
		endPause: cfg.EndPause,
		logger:   cfg.Logger,
	}, nil
}

// Render counts down the stage duration writing one clock update per second
// (duration+1 updates, from the full duration down to 00:00), then prints the
// stage complete banner and waits the end pause. The sleeper is called once
// per update plus once for the end pause.
//
// If the sleeper is interrupted the display is cleared, a stop message is
// printed and model.StageResultCancelled is returned.
func (r *Renderer) Render(ctx context.Context, req countdown.Request) (model.StageResult, error) {
	if err := req.Stage.Validate(); err != nil {
		return "", fmt.Errorf("invalid stage: %w", err)
	}

	logger := r.logger.WithValues(log.Kv{"stage": string(req.Stage)})

	remaining := max(0, int(req.Duration/time.Second))
	label := r.styles.Label(req.Stage.Name(), req.Stage == model.StageWork)

	logger.Debugf("starting %s countdown of %ds", req.Stage.Name(), remaining)

	err := r.printf("--- Pomodoro Timer --- | Completed Pomodoros: %d\n", req.Completed)
	if err != nil {
		return "", err
	}

	for ; remaining >= 0; remaining-- {
		err := r.printf("\r[%s] Time Remaining: %s%s", label, r.styles.Clock(countdown.FormatClock(remaining)), terminal.ClearLineSeq)
		if err != nil {
			return "", err
		}

		err = r.sleeper.Sleep(ctx, tick)
		if isCancel(err) {
			logger.Debugf("countdown interrupted with %ds remaining", remaining)
			return r.stop()
		}
		if err != nil {
			return "", fmt.Errorf("could not wait: %w", err)
		}
	}

	if err := r.clearer.Clear(); err != nil {
		return "", fmt.Errorf("could not clear display: %w", err)
	}

	err = r.printf("\n%s %s is over! Starting next stage...\n\n", r.styles.Banner("[DING DING!]"), req.Stage.Name())
	if err != nil {
		return "", err
	}
	err = r.printf("%s\n%s\n%s\n\n",
		"*************************************************",
		"***** Take a deep breath and switch tasks *****",
		"*************************************************",
	)
	if err != nil {
		return "", err
	}

	err = r.sleeper.Sleep(ctx, r.endPause)
	if isCancel(err) {
		logger.Debugf("end pause interrupted")
		return r.stop()
	}
	if err != nil {
		return "", fmt.Errorf("could not wait: %w", err)
	}

	logger.Debugf("%s countdown completed", req.Stage.Name())

	return model.StageResultCompleted, nil
}

func (r *Renderer) stop() (model.StageResult, error) {
	if err := r.clearer.Clear(); err != nil {
		return "", fmt.Errorf("could not clear display: %w", err)
	}

	if err := r.printf("\n%s\n", r.styles.Message("Timer stopped by user. Goodbye!")); err != nil {
		return "", err
	}

	return model.StageResultCancelled, nil
}

func (r *Renderer) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		return fmt.Errorf("could not write display: %w", err)
	}
	return nil
}

func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
