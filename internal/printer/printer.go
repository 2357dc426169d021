package printer

import "github.com/slok/pomo/internal/model"

// Printer knows how to print cycle information in different formats.
type Printer interface {
	PrintSummary(summary model.CycleSummary) error
	PrintConfig(cfg model.CycleConfig) error
}
