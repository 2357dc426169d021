package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/pomo/internal/app/cycle"
	"github.com/slok/pomo/internal/countdown/text"
	"github.com/slok/pomo/internal/printer"
	"github.com/slok/pomo/internal/terminal"
)

type RunCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	flags    cycleFlags
	endPause time.Duration
	summary  string
}

// NewRunCommand returns the run command.
func NewRunCommand(rootCmd *RootCommand, app *kingpin.Application) *RunCommand {
	c := &RunCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("run", "Run the pomodoro timer.").Default()
	c.flags.register(c.Cmd)
	c.Cmd.Flag("end-pause", "Pause after each stage before starting the next one.").Default(text.DefaultEndPause.String()).DurationVar(&c.endPause)
	c.Cmd.Flag("summary", "Print a run summary when the timer ends (none, table, json).").Default(formatNone).EnumVar(&c.summary, formatNone, formatTable, formatJSON)

	return c
}

func (c RunCommand) Name() string { return c.Cmd.FullCommand() }

func (c RunCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger
	out := c.rootCmd.Stdout

	cfg, err := resolveCycleConfig(ctx, c.rootCmd, c.flags)
	if err != nil {
		return err
	}

	styles := terminal.NewStyles(out, c.rootCmd.NoColor)
	clearer := terminal.NewANSIClearer(out)

	// Initialize countdown renderer.
	renderer, err := text.NewRenderer(text.RendererConfig{
		Out:        out,
		Clearer:    clearer,
		Sleeper:    c.rootCmd.Sleeper,
		Styles:     styles,
		EndPause:   c.endPause,
		NoEndPause: c.endPause == 0,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create renderer: %w", err)
	}

	// Create cycle service.
	svc, err := cycle.NewService(cycle.ServiceConfig{
		Renderer: renderer,
		Out:      out,
		Clearer:  clearer,
		Styles:   styles,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute cycle.
	resp, err := svc.Run(ctx, cycle.Request{Config: cfg})
	if err != nil {
		return fmt.Errorf("could not run pomodoro cycle: %w", err)
	}

	// Print summary.
	var p printer.Printer
	switch c.summary {
	case formatTable:
		p = printer.NewTablePrinter(out)
	case formatJSON:
		p = printer.NewJSONPrinter(out)
	default:
		return nil
	}

	if err := p.PrintSummary(resp.Summary); err != nil {
		return fmt.Errorf("could not print summary: %w", err)
	}

	return nil
}
