package io

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/slok/pomo/internal/model"
	"github.com/slok/pomo/internal/storage"
)

// CycleYAMLRepository loads cycle profiles from YAML files.
type CycleYAMLRepository struct {
	fs fs.FS
}

var _ storage.CycleConfigRepository = &CycleYAMLRepository{}

// NewCycleYAMLRepository creates a new YAML cycle profile repository.
func NewCycleYAMLRepository(filesystem fs.FS) *CycleYAMLRepository {
	return &CycleYAMLRepository{fs: filesystem}
}

// GetCycleConfig loads a cycle profile from a YAML file and returns a normalized domain model.
// Missing keys take the default values. A missing file error wraps both
// model.ErrNotFound and fs.ErrNotExist.
func (r *CycleYAMLRepository) GetCycleConfig(ctx context.Context, path string) (model.CycleConfig, error) {
	data, err := fs.ReadFile(r.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.CycleConfig{}, fmt.Errorf("reading cycle profile file: %w: %w", model.ErrNotFound, err)
	}
	if err != nil {
		return model.CycleConfig{}, fmt.Errorf("reading cycle profile file: %w", err)
	}

	if ctx.Err() != nil {
		return model.CycleConfig{}, ctx.Err()
	}

	var cfg CycleProfile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.CycleConfig{}, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return model.CycleConfig{}, fmt.Errorf("invalid cycle profile: %w", err)
	}

	return cfg.toModel(), nil
}

// CycleProfile represents the YAML structure for a cycle profile, durations are in minutes.
type CycleProfile struct {
	Work              *int `yaml:"work"`
	ShortBreak        *int `yaml:"short_break"`
	LongBreak         *int `yaml:"long_break"`
	PomodorosPerCycle *int `yaml:"pomodoros_per_cycle"`
	MaxPomodoros      *int `yaml:"max_pomodoros"`
}

func (c CycleProfile) validate() error {
	fields := []struct {
		name  string
		value *int
	}{
		{"work", c.Work},
		{"short_break", c.ShortBreak},
		{"long_break", c.LongBreak},
		{"pomodoros_per_cycle", c.PomodorosPerCycle},
		{"max_pomodoros", c.MaxPomodoros},
	}

	for _, f := range fields {
		if f.value != nil && *f.value < 0 {
			return fmt.Errorf("%s can't be negative, got: %d: %w", f.name, *f.value, model.ErrNotValid)
		}
	}

	if c.PomodorosPerCycle != nil && *c.PomodorosPerCycle == 0 {
		return fmt.Errorf("pomodoros_per_cycle must be positive: %w", model.ErrNotValid)
	}

	return nil
}

func (c CycleProfile) toModel() model.CycleConfig {
	valueOr := func(v *int, def int) int {
		if v == nil {
			return def
		}
		return *v
	}

	return model.NewCycleConfigFromMinutes(
		valueOr(c.Work, model.DefaultWorkMinutes),
		valueOr(c.ShortBreak, model.DefaultShortBreakMinutes),
		valueOr(c.LongBreak, model.DefaultLongBreakMinutes),
		valueOr(c.PomodorosPerCycle, model.DefaultPomodorosPerCycle),
		valueOr(c.MaxPomodoros, 0),
	)
}
