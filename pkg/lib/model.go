package lib

import (
	"errors"
	"time"

	"github.com/slok/pomo/internal/model"
)

var (
	// ErrNotFound is returned when a resource (e.g. a profile file) does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotValid is returned when the input is not valid.
	ErrNotValid = errors.New("not valid")
)

// Stage identifies a pomodoro cycle stage.
type Stage string

const (
	// StageWork is the focused work interval.
	StageWork Stage = "work"
	// StageShortBreak is the break between pomodoros of the same cycle.
	StageShortBreak Stage = "short-break"
	// StageLongBreak is the break that closes a cycle.
	StageLongBreak Stage = "long-break"
)

// StageResult is how a stage countdown finished.
type StageResult string

const (
	// StageResultCompleted means the countdown reached zero.
	StageResultCompleted StageResult = "completed"
	// StageResultCancelled means the countdown was interrupted.
	StageResultCancelled StageResult = "cancelled"
)

// Outcome is how a cycle run finished.
type Outcome string

const (
	// OutcomeTargetReached means [CycleOpts].MaxPomodoros work stages were completed.
	OutcomeTargetReached Outcome = "target-reached"
	// OutcomeInterrupted means the context was cancelled before the target.
	OutcomeInterrupted Outcome = "interrupted"
)

// CycleOpts configures a cycle run.
//
// Durations are truncated to whole seconds and negative values are treated
// as zero. A zero length stage still shows its 00:00 update.
type CycleOpts struct {
	// Work is the length of a pomodoro.
	Work time.Duration
	// ShortBreak is the break between pomodoros of the same cycle.
	ShortBreak time.Duration
	// LongBreak is the break after every PomodorosPerCycle pomodoros.
	LongBreak time.Duration
	// PomodorosPerCycle is the number of pomodoros per long break, values
	// under 1 are treated as 1.
	PomodorosPerCycle int
	// MaxPomodoros ends the run after this many completed pomodoros.
	// Zero runs until the context is cancelled.
	MaxPomodoros int
}

// DefaultCycleOpts returns the classic 25/5/15 cycle with 4 pomodoros per cycle.
func DefaultCycleOpts() CycleOpts {
	return fromInternalCycleConfig(model.DefaultCycleConfig())
}

// StageRun is the record of a single stage of a run.
type StageRun struct {
	Stage     Stage
	Duration  time.Duration
	Result    StageResult
	StartedAt time.Time
	EndedAt   time.Time
}

// CycleSummary is the result of a cycle run.
type CycleSummary struct {
	// ID is the unique identifier (ULID) of the run.
	ID string
	// Opts are the normalized options the run used.
	Opts               CycleOpts
	Outcome            Outcome
	CompletedPomodoros int
	ShortBreaks        int
	LongBreaks         int
	// Stages are the rendered stages in order, including the interrupted one.
	Stages    []StageRun
	StartedAt time.Time
	EndedAt   time.Time
}

func toInternalCycleConfig(opts CycleOpts) model.CycleConfig {
	cfg := model.CycleConfig{
		Work:              opts.Work,
		ShortBreak:        opts.ShortBreak,
		LongBreak:         opts.LongBreak,
		PomodorosPerCycle: opts.PomodorosPerCycle,
		MaxPomodoros:      opts.MaxPomodoros,
	}
	cfg.Normalize()

	return cfg
}

func fromInternalCycleConfig(cfg model.CycleConfig) CycleOpts {
	return CycleOpts{
		Work:              cfg.Work,
		ShortBreak:        cfg.ShortBreak,
		LongBreak:         cfg.LongBreak,
		PomodorosPerCycle: cfg.PomodorosPerCycle,
		MaxPomodoros:      cfg.MaxPomodoros,
	}
}

func fromInternalSummary(s model.CycleSummary) CycleSummary {
	counts := s.Counts()
	out := CycleSummary{
		ID:                 s.ID,
		Opts:               fromInternalCycleConfig(s.Config),
		Outcome:            Outcome(s.Outcome),
		CompletedPomodoros: s.CompletedPomodoros,
		ShortBreaks:        counts[model.StageShortBreak],
		LongBreaks:         counts[model.StageLongBreak],
		Stages:             make([]StageRun, 0, len(s.Stages)),
		StartedAt:          s.StartedAt,
		EndedAt:            s.EndedAt,
	}

	for _, r := range s.Stages {
		out.Stages = append(out.Stages, StageRun{
			Stage:     Stage(r.Stage),
			Duration:  r.Duration,
			Result:    StageResult(r.Result),
			StartedAt: r.StartedAt,
			EndedAt:   r.EndedAt,
		})
	}

	return out
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return joinErrors(err, ErrNotFound)
	case errors.Is(err, model.ErrNotValid):
		return joinErrors(err, ErrNotValid)
	default:
		return err
	}
}

func joinErrors(original, sentinel error) error {
	return &mappedError{original: original, sentinel: sentinel}
}

type mappedError struct {
	original error
	sentinel error
}

func (e *mappedError) Error() string { return e.original.Error() }

func (e *mappedError) Is(target error) bool {
	return target == e.sentinel
}

func (e *mappedError) Unwrap() error { return e.original }
