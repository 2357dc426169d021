package countdown

import (
	"context"
	"fmt"
	"time"

	"github.com/slok/pomo/internal/model"
)

// Request is a single stage countdown request.
type Request struct {
	Stage model.Stage
	// Duration of the countdown, negative durations are treated as zero.
	Duration time.Duration
	// Completed is the number of completed pomodoros, shown on the header.
	Completed int
}

// Renderer renders a stage countdown.
//
// A user interruption is not an error: renderers report it with
// model.StageResultCancelled after cleaning the display.
type Renderer interface {
	Render(ctx context.Context, req Request) (model.StageResult, error)
}

//go:generate mockery --case underscore --output countdownmock --outpkg countdownmock --name Renderer

// FormatClock formats seconds as MM:SS.
func FormatClock(seconds int) string {
	seconds = max(0, seconds)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
