package io_test

import (
	"context"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/pomo/internal/model"
	storageio "github.com/slok/pomo/internal/storage/io"
)

func TestCycleYAMLRepositoryGetCycleConfig(t *testing.T) {
	tests := map[string]struct {
		fs        fstest.MapFS
		path      string
		expCfg    model.CycleConfig
		expErr    bool
		expErrIs  error
		expErrMsg string
	}{
		"A full profile should load successfully": {
			fs: fstest.MapFS{
				"config.yaml": &fstest.MapFile{
					Data: []byte(`work: 50
short_break: 10
long_break: 30
pomodoros_per_cycle: 3
max_pomodoros: 6
`),
				},
			},
			path: "config.yaml",
			expCfg: model.CycleConfig{
				Work:              50 * time.Minute,
				ShortBreak:        10 * time.Minute,
				LongBreak:         30 * time.Minute,
				PomodorosPerCycle: 3,
				MaxPomodoros:      6,
			},
		},
		"A partial profile should use the defaults for missing keys": {
			fs: fstest.MapFS{
				"config.yaml": &fstest.MapFile{
					Data: []byte(`work: 45
`),
				},
			},
			path: "config.yaml",
			expCfg: model.CycleConfig{
				Work:              45 * time.Minute,
				ShortBreak:        5 * time.Minute,
				LongBreak:         15 * time.Minute,
				PomodorosPerCycle: 4,
			},
		},
		"An empty profile should load the defaults": {
			fs: fstest.MapFS{
				"empty.yaml": &fstest.MapFile{
					Data: []byte(`---
`),
				},
			},
			path:   "empty.yaml",
			expCfg: model.DefaultCycleConfig(),
		},
		"Zero durations should be allowed": {
			fs: fstest.MapFS{
				"config.yaml": &fstest.MapFile{
					Data: []byte(`work: 0
short_break: 0
long_break: 0
`),
				},
			},
			path: "config.yaml",
			expCfg: model.CycleConfig{
				PomodorosPerCycle: 4,
			},
		},
		"Missing file should return a not exist error": {
			fs:        fstest.MapFS{},
			path:      "nonexistent.yaml",
			expErr:    true,
			expErrIs:  fs.ErrNotExist,
			expErrMsg: "reading cycle profile file",
		},
		"Invalid YAML should return error": {
			fs: fstest.MapFS{
				"invalid.yaml": &fstest.MapFile{
					Data: []byte(`invalid: yaml: content: {}`),
				},
			},
			path:      "invalid.yaml",
			expErr:    true,
			expErrMsg: "parsing YAML",
		},
		"Negative durations should return error": {
			fs: fstest.MapFS{
				"config.yaml": &fstest.MapFile{
					Data: []byte(`short_break: -5
`),
				},
			},
			path:      "config.yaml",
			expErr:    true,
			expErrIs:  model.ErrNotValid,
			expErrMsg: "short_break can't be negative",
		},
		"Zero pomodoros per cycle should return error": {
			fs: fstest.MapFS{
				"config.yaml": &fstest.MapFile{
					Data: []byte(`pomodoros_per_cycle: 0
`),
				},
			},
			path:     "config.yaml",
			expErr:   true,
			expErrIs: model.ErrNotValid,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			repo := storageio.NewCycleYAMLRepository(test.fs)
			cfg, err := repo.GetCycleConfig(context.Background(), test.path)

			if test.expErr {
				require.Error(err)
				if test.expErrIs != nil {
					assert.ErrorIs(err, test.expErrIs)
				}
				if test.expErrMsg != "" {
					assert.Contains(err.Error(), test.expErrMsg)
				}
				return
			}

			require.NoError(err)
			assert.Equal(test.expCfg, cfg)
		})
	}
}

func TestCycleYAMLRepositoryGetCycleConfigCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := storageio.NewCycleYAMLRepository(fstest.MapFS{
		"config.yaml": &fstest.MapFile{Data: []byte("work: 1\n")},
	})

	_, err := repo.GetCycleConfig(ctx, "config.yaml")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCycleYAMLRepositoryGetCycleConfigMissingFile(t *testing.T) {
	repo := storageio.NewCycleYAMLRepository(fstest.MapFS{})
	_, err := repo.GetCycleConfig(context.Background(), "config.yaml")

	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
