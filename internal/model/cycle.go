package model

import (
	"fmt"
	"time"
)

const (
	// DefaultWorkMinutes is the default work stage length.
	DefaultWorkMinutes = 25
	// DefaultShortBreakMinutes is the default short break length.
	DefaultShortBreakMinutes = 5
	// DefaultLongBreakMinutes is the default long break length.
	DefaultLongBreakMinutes = 15
	// DefaultPomodorosPerCycle is the number of work stages before a long break.
	DefaultPomodorosPerCycle = 4
)

// CycleConfig is the configuration of a pomodoro cycle run.
type CycleConfig struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
	// PomodorosPerCycle is the number of work stages per long break, always >= 1
	// once normalized.
	PomodorosPerCycle int
	// MaxPomodoros stops the run after this many completed work stages.
	// Zero means unbounded.
	MaxPomodoros int
}

// DefaultCycleConfig returns the classic 25/5/15 configuration with 4 pomodoros per cycle.
func DefaultCycleConfig() CycleConfig {
	return NewCycleConfigFromMinutes(DefaultWorkMinutes, DefaultShortBreakMinutes, DefaultLongBreakMinutes, DefaultPomodorosPerCycle, 0)
}

// NewCycleConfigFromMinutes returns a normalized cycle configuration from minute based values.
func NewCycleConfigFromMinutes(work, shortBreak, longBreak, perCycle, maxPomodoros int) CycleConfig {
	c := CycleConfig{
		Work:              minutes(work),
		ShortBreak:        minutes(shortBreak),
		LongBreak:         minutes(longBreak),
		PomodorosPerCycle: perCycle,
		MaxPomodoros:      maxPomodoros,
	}
	c.Normalize()

	return c
}

func minutes(m int) time.Duration {
	return time.Duration(max(0, m)) * 60 * time.Second
}

// Normalize clamps the configuration to valid values: durations are
// non-negative whole seconds, pomodoros per cycle is at least 1 and a
// negative max is treated as unbounded.
func (c *CycleConfig) Normalize() {
	c.Work = wholeSeconds(c.Work)
	c.ShortBreak = wholeSeconds(c.ShortBreak)
	c.LongBreak = wholeSeconds(c.LongBreak)
	c.PomodorosPerCycle = max(1, c.PomodorosPerCycle)
	c.MaxPomodoros = max(0, c.MaxPomodoros)
}

func wholeSeconds(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d.Truncate(time.Second)
}

// StageDuration returns the configured duration for a stage.
func (c CycleConfig) StageDuration(s Stage) (time.Duration, error) {
	switch s {
	case StageWork:
		return c.Work, nil
	case StageShortBreak:
		return c.ShortBreak, nil
	case StageLongBreak:
		return c.LongBreak, nil
	}

	return 0, fmt.Errorf("unknown stage %q: %w", string(s), ErrNotValid)
}

// BreakAfter returns the break stage that follows the completed-th work stage.
func (c CycleConfig) BreakAfter(completed int) Stage {
	perCycle := max(1, c.PomodorosPerCycle)
	if completed%perCycle == 0 {
		return StageLongBreak
	}
	return StageShortBreak
}

// TargetReached returns true when a max is configured and the completed work
// stages reached it.
func (c CycleConfig) TargetReached(completed int) bool {
	return c.MaxPomodoros > 0 && completed >= c.MaxPomodoros
}

// CycleOutcome is how a cycle run finished.
type CycleOutcome string

const (
	// CycleOutcomeTargetReached means the configured max pomodoros were completed.
	CycleOutcomeTargetReached CycleOutcome = "target-reached"
	// CycleOutcomeInterrupted means the user stopped the run.
	CycleOutcomeInterrupted CycleOutcome = "interrupted"
)

// CycleSummary is the result of a cycle run.
type CycleSummary struct {
	ID                 string
	Config             CycleConfig
	CompletedPomodoros int
	Outcome            CycleOutcome
	Stages             []StageRun
	StartedAt          time.Time
	EndedAt            time.Time
}

// Counts returns the number of rendered stages per stage type, including the
// interrupted one if any.
func (s CycleSummary) Counts() map[Stage]int {
	counts := map[Stage]int{
		StageWork:       0,
		StageShortBreak: 0,
		StageLongBreak:  0,
	}
	for _, r := range s.Stages {
		counts[r.Stage]++
	}

	return counts
}
