package lib

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/slok/pomo/internal/app/cycle"
	"github.com/slok/pomo/internal/clock"
	"github.com/slok/pomo/internal/countdown/text"
	"github.com/slok/pomo/internal/log"
	storageio "github.com/slok/pomo/internal/storage/io"
	"github.com/slok/pomo/internal/terminal"
)

// Config configures the SDK client.
//
// All fields are optional. An empty Config{} runs silently on the wall clock.
type Config struct {
	// Out receives the countdown display and cycle messages.
	// Default: io.Discard.
	Out io.Writer

	// NoColor disables the styled output. Styles are only applied when Out is
	// a terminal that supports them.
	NoColor bool

	// EndPause is the pause after each completed stage.
	// Default: 3s. Use NoEndPause to disable it.
	EndPause time.Duration

	// NoEndPause removes the pause after each completed stage.
	NoEndPause bool

	// Sleep waits for a duration, it must return the context error when the
	// context ends first. Default: wall clock timers.
	Sleep func(ctx context.Context, d time.Duration) error

	// Logger receives structured log output from the SDK.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger
}

func (c *Config) defaults() error {
	if c.Out == nil {
		c.Out = io.Discard
	}

	if c.EndPause < 0 {
		return fmt.Errorf("end pause can't be negative: %w", ErrNotValid)
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Client runs pomodoro cycles programmatically.
//
// Create a Client with [New]. A Client is safe for concurrent use, each run
// gets its own renderer, but runs sharing the same Out will interleave output.
type Client struct {
	out        io.Writer
	noColor    bool
	endPause   time.Duration
	noEndPause bool
	sleeper    clock.Sleeper
	logger     log.Logger
}

// New creates a new SDK client.
func New(cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var sleeper clock.Sleeper = clock.Real
	if cfg.Sleep != nil {
		sleeper = clock.SleeperFunc(cfg.Sleep)
	}

	return &Client{
		out:        cfg.Out,
		noColor:    cfg.NoColor,
		endPause:   cfg.EndPause,
		noEndPause: cfg.NoEndPause,
		sleeper:    sleeper,
		logger:     cfg.Logger,
	}, nil
}

// RunCycle runs a pomodoro cycle with the given options. It blocks until
// opts.MaxPomodoros work stages are completed or ctx is cancelled.
//
// Cancellation is not an error, the returned summary has [OutcomeInterrupted].
func (c *Client) RunCycle(ctx context.Context, opts CycleOpts) (*CycleSummary, error) {
	styles := terminal.NewStyles(c.out, c.noColor)
	clearer := terminal.NewANSIClearer(c.out)

	renderer, err := text.NewRenderer(text.RendererConfig{
		Out:        c.out,
		Clearer:    clearer,
		Sleeper:    c.sleeper,
		Styles:     styles,
		EndPause:   c.endPause,
		NoEndPause: c.noEndPause,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, mapError(fmt.Errorf("could not create renderer: %w", err))
	}

	svc, err := cycle.NewService(cycle.ServiceConfig{
		Renderer: renderer,
		Out:      c.out,
		Clearer:  clearer,
		Styles:   styles,
		Logger:   c.logger,
	})
	if err != nil {
		return nil, mapError(fmt.Errorf("could not create service: %w", err))
	}

	resp, err := svc.Run(ctx, cycle.Request{Config: toInternalCycleConfig(opts)})
	if err != nil {
		return nil, mapError(err)
	}

	summary := fromInternalSummary(resp.Summary)
	return &summary, nil
}

// LoadProfile loads cycle options from a YAML profile file. Keys missing in
// the file take the [DefaultCycleOpts] values.
//
// Returns [ErrNotFound] if the file does not exist, or [ErrNotValid] if it
// has invalid values.
func (c *Client) LoadProfile(ctx context.Context, path string) (CycleOpts, error) {
	dir, file := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}

	repo := storageio.NewCycleYAMLRepository(os.DirFS(dir))
	cfg, err := repo.GetCycleConfig(ctx, file)
	if err != nil {
		return CycleOpts{}, mapError(fmt.Errorf("could not load profile %s: %w", path, err))
	}

	c.logger.Debugf("loaded cycle profile from %s", path)

	return fromInternalCycleConfig(cfg), nil
}
