package printer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/slok/pomo/internal/model"
)

// JSONPrinter prints cycle information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

var _ Printer = &JSONPrinter{}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// configOutput represents the cycle configuration output, durations in seconds.
type configOutput struct {
	WorkSeconds       int `json:"work_seconds"`
	ShortBreakSeconds int `json:"short_break_seconds"`
	LongBreakSeconds  int `json:"long_break_seconds"`
	PomodorosPerCycle int `json:"pomodoros_per_cycle"`
	MaxPomodoros      int `json:"max_pomodoros"`
}

// stageOutput represents a rendered stage.
type stageOutput struct {
	Stage           string    `json:"stage"`
	DurationSeconds int       `json:"duration_seconds"`
	Result          string    `json:"result"`
	StartedAt       time.Time `json:"started_at"`
	EndedAt         time.Time `json:"ended_at"`
}

// summaryOutput represents the full cycle run summary output.
type summaryOutput struct {
	ID                 string        `json:"id"`
	Outcome            string        `json:"outcome"`
	CompletedPomodoros int           `json:"completed_pomodoros"`
	ShortBreaks        int           `json:"short_breaks"`
	LongBreaks         int           `json:"long_breaks"`
	Config             configOutput  `json:"config"`
	Stages             []stageOutput `json:"stages"`
	StartedAt          time.Time     `json:"started_at"`
	EndedAt            time.Time     `json:"ended_at"`
}

// PrintSummary prints the cycle run summary in JSON format.
func (j *JSONPrinter) PrintSummary(summary model.CycleSummary) error {
	counts := summary.Counts()
	output := summaryOutput{
		ID:                 summary.ID,
		Outcome:            string(summary.Outcome),
		CompletedPomodoros: summary.CompletedPomodoros,
		ShortBreaks:        counts[model.StageShortBreak],
		LongBreaks:         counts[model.StageLongBreak],
		Config:             mapConfig(summary.Config),
		Stages:             make([]stageOutput, 0, len(summary.Stages)),
		StartedAt:          summary.StartedAt.UTC(),
		EndedAt:            summary.EndedAt.UTC(),
	}

	for _, s := range summary.Stages {
		output.Stages = append(output.Stages, stageOutput{
			Stage:           string(s.Stage),
			DurationSeconds: int(s.Duration / time.Second),
			Result:          string(s.Result),
			StartedAt:       s.StartedAt.UTC(),
			EndedAt:         s.EndedAt.UTC(),
		})
	}

	return j.encode(output)
}

// PrintConfig prints the cycle configuration in JSON format.
func (j *JSONPrinter) PrintConfig(cfg model.CycleConfig) error {
	return j.encode(mapConfig(cfg))
}

func (j *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func mapConfig(cfg model.CycleConfig) configOutput {
	return configOutput{
		WorkSeconds:       int(cfg.Work / time.Second),
		ShortBreakSeconds: int(cfg.ShortBreak / time.Second),
		LongBreakSeconds:  int(cfg.LongBreak / time.Second),
		PomodorosPerCycle: cfg.PomodorosPerCycle,
		MaxPomodoros:      cfg.MaxPomodoros,
	}
}
