package model

import (
	"fmt"
	"time"
)

// Stage represents one named interval of a pomodoro cycle.
type Stage string

const (
	// StageWork is the focused work interval (a pomodoro).
	StageWork Stage = "work"
	// StageShortBreak is the break between pomodoros of the same cycle.
	StageShortBreak Stage = "short-break"
	// StageLongBreak is the break that closes a cycle.
	StageLongBreak Stage = "long-break"
)

// Name returns the label shown on the countdown display.
func (s Stage) Name() string {
	switch s {
	case StageWork:
		return "WORK"
	case StageShortBreak:
		return "SHORT BREAK"
	case StageLongBreak:
		return "LONG BREAK"
	default:
		return string(s)
	}
}

// Validate validates the stage is a known one.
func (s Stage) Validate() error {
	switch s {
	case StageWork, StageShortBreak, StageLongBreak:
		return nil
	}

	return fmt.Errorf("unknown stage %q: %w", string(s), ErrNotValid)
}

// StageResult is how a stage countdown finished.
type StageResult string

const (
	// StageResultCompleted means the countdown reached zero and the end pause elapsed.
	StageResultCompleted StageResult = "completed"
	// StageResultCancelled means the user interrupted the countdown.
	StageResultCancelled StageResult = "cancelled"
)

// StageRun is the record of a single rendered stage.
type StageRun struct {
	Stage     Stage
	Duration  time.Duration
	Result    StageResult
	StartedAt time.Time
	EndedAt   time.Time
}
