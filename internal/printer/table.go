package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/slok/pomo/internal/model"
)

// TablePrinter prints cycle information in a table format.
type TablePrinter struct {
	writer io.Writer
}

var _ Printer = &TablePrinter{}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintSummary prints the cycle run summary followed by the rendered stages.
func (t *TablePrinter) PrintSummary(summary model.CycleSummary) error {
	counts := summary.Counts()

	fmt.Fprintf(t.writer, "Run:          %s\n", summary.ID)
	fmt.Fprintf(t.writer, "Outcome:      %s\n", summary.Outcome)
	fmt.Fprintf(t.writer, "Pomodoros:    %d\n", summary.CompletedPomodoros)
	fmt.Fprintf(t.writer, "Breaks:       %d short, %d long\n", counts[model.StageShortBreak], counts[model.StageLongBreak])
	fmt.Fprintf(t.writer, "Started:      %s\n", FormatTimestamp(summary.StartedAt))
	fmt.Fprintf(t.writer, "Ended:        %s\n", FormatTimestamp(summary.EndedAt))
	fmt.Fprintf(t.writer, "Elapsed:      %s\n", FormatDuration(summary.EndedAt.Sub(summary.StartedAt)))

	if len(summary.Stages) == 0 {
		return nil
	}

	fmt.Fprintln(t.writer)

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header.
	fmt.Fprintln(tw, "#\tSTAGE\tDURATION\tRESULT")

	// Print rows.
	for i, s := range summary.Stages {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, s.Stage.Name(), FormatDuration(s.Duration), s.Result)
	}

	return nil
}

// PrintConfig prints the cycle configuration.
func (t *TablePrinter) PrintConfig(cfg model.CycleConfig) error {
	maxPomodoros := "unbounded"
	if cfg.MaxPomodoros > 0 {
		maxPomodoros = fmt.Sprintf("%d", cfg.MaxPomodoros)
	}

	fmt.Fprintf(t.writer, "Work:             %s\n", FormatDuration(cfg.Work))
	fmt.Fprintf(t.writer, "Short break:      %s\n", FormatDuration(cfg.ShortBreak))
	fmt.Fprintf(t.writer, "Long break:       %s\n", FormatDuration(cfg.LongBreak))
	fmt.Fprintf(t.writer, "Pomodoros/cycle:  %d\n", cfg.PomodorosPerCycle)
	fmt.Fprintf(t.writer, "Max pomodoros:    %s\n", maxPomodoros)

	return nil
}
