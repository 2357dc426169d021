package cycle

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/slok/pomo/internal/countdown"
	"github.com/slok/pomo/internal/log"
	"github.com/slok/pomo/internal/model"
	"github.com/slok/pomo/internal/terminal"
)

// ServiceConfig is the configuration for the cycle service.
type ServiceConfig struct {
	Renderer countdown.Renderer
	// Out is where the cycle messages are written.
	Out     io.Writer
	Clearer terminal.Clearer
	Styles  *terminal.Styles
	Logger  log.Logger
	// TimeNow returns the current time, defaults to time.Now.
	TimeNow func() time.Time
	// IDGen returns a new run ID, defaults to ULIDs.
	IDGen func() string
}

func (c *ServiceConfig) defaults() error {
	if c.Renderer == nil {
		return fmt.Errorf("renderer is required")
	}

	if c.Out == nil {
		return fmt.Errorf("out writer is required")
	}

	if c.Clearer == nil {
		c.Clearer = terminal.NoopClearer
	}

	if c.TimeNow == nil {
		c.TimeNow = time.Now
	}

	if c.IDGen == nil {
		c.IDGen = func() string {
			return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
		}
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Cycle"})

	return nil
}

// Service drives the pomodoro cycle: work stages followed by short breaks,
// with a long break closing every cycle.
type Service struct {
	renderer countdown.Renderer
	out      io.Writer
	clearer  terminal.Clearer
	styles   *terminal.Styles
	logger   log.Logger
	timeNow  func() time.Time
	idGen    func() string
}

// NewService creates a new cycle service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		renderer: cfg.Renderer,
		out:      cfg.Out,
		clearer:  cfg.Clearer,
		styles:   cfg.Styles,
		logger:   cfg.Logger,
		timeNow:  cfg.TimeNow,
		idGen:    cfg.IDGen,
	}, nil
}

// Request represents the cycle run parameters.
type Request struct {
	Config model.CycleConfig
}

// Response is the result of a cycle run.
type Response struct {
	Summary model.CycleSummary
}

// Run runs the cycle until the configured max pomodoros are completed or the
// user interrupts it. An interruption is not an error, it ends the run with
// model.CycleOutcomeInterrupted.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	cfg := req.Config
	cfg.Normalize()

	summary := model.CycleSummary{
		ID:        s.idGen(),
		Config:    cfg,
		StartedAt: s.timeNow().UTC(),
	}
	logger := s.logger.WithValues(log.Kv{"run-id": summary.ID})
	logger.Infof("starting cycle (work: %s, short break: %s, long break: %s, per cycle: %d, max: %d)",
		cfg.Work, cfg.ShortBreak, cfg.LongBreak, cfg.PomodorosPerCycle, cfg.MaxPomodoros)

	if err := s.clearer.Clear(); err != nil {
		return nil, fmt.Errorf("could not clear display: %w", err)
	}

	err := s.printf("Welcome to the Pomodoro Timer!\nWork: %dm | Short Break: %dm | Long Break: %dm\n\nPress Ctrl+C to stop the timer at any time.\n",
		int(cfg.Work/time.Minute), int(cfg.ShortBreak/time.Minute), int(cfg.LongBreak/time.Minute))
	if err != nil {
		return nil, err
	}

	outcome, err := s.loop(ctx, logger, cfg, &summary)
	if err != nil {
		return nil, err
	}

	summary.Outcome = outcome
	summary.EndedAt = s.timeNow().UTC()

	switch outcome {
	case model.CycleOutcomeTargetReached:
		err = s.printf("%s\n", s.styles.Banner(fmt.Sprintf("Reached target of %d pomodoros. Good job!", cfg.MaxPomodoros)))
	case model.CycleOutcomeInterrupted:
		err = s.printf("\n%s\n", s.styles.Message("Timer interrupted by user. Exiting gracefully."))
	}
	if err != nil {
		return nil, err
	}

	logger.Infof("cycle finished (%s) with %d completed pomodoros", outcome, summary.CompletedPomodoros)

	return &Response{Summary: summary}, nil
}

// loop runs WORK -> {SHORT BREAK | LONG BREAK} -> WORK ... The max check
// happens right after a work stage completes so no break follows the last one.
func (s *Service) loop(ctx context.Context, logger log.Logger, cfg model.CycleConfig, summary *model.CycleSummary) (model.CycleOutcome, error) {
	for {
		res, err := s.render(ctx, cfg, model.StageWork, summary)
		if err != nil {
			return "", err
		}
		if res == model.StageResultCancelled {
			return model.CycleOutcomeInterrupted, nil
		}

		summary.CompletedPomodoros++
		logger.Debugf("pomodoro %d completed", summary.CompletedPomodoros)

		if cfg.TargetReached(summary.CompletedPomodoros) {
			return model.CycleOutcomeTargetReached, nil
		}

		res, err = s.render(ctx, cfg, cfg.BreakAfter(summary.CompletedPomodoros), summary)
		if err != nil {
			return "", err
		}
		if res == model.StageResultCancelled {
			return model.CycleOutcomeInterrupted, nil
		}
	}
}

func (s *Service) render(ctx context.Context, cfg model.CycleConfig, stage model.Stage, summary *model.CycleSummary) (model.StageResult, error) {
	d, err := cfg.StageDuration(stage)
	if err != nil {
		return "", err
	}

	run := model.StageRun{
		Stage:     stage,
		Duration:  d,
		StartedAt: s.timeNow().UTC(),
	}

	res, err := s.renderer.Render(ctx, countdown.Request{
		Stage:     stage,
		Duration:  d,
		Completed: summary.CompletedPomodoros,
	})
	if err != nil {
		return "", fmt.Errorf("could not render %s stage: %w", stage.Name(), err)
	}

	run.Result = res
	run.EndedAt = s.timeNow().UTC()
	summary.Stages = append(summary.Stages, run)

	return res, nil
}

func (s *Service) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		return fmt.Errorf("could not write display: %w", err)
	}
	return nil
}
