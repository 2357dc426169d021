package terminal

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorWork   = lipgloss.Color("#fb4934")
	colorBreak  = lipgloss.Color("#8ec07c")
	colorClock  = lipgloss.Color("#ebdbb2")
	colorBanner = lipgloss.Color("#fabd2f")
	colorDim    = lipgloss.Color("#928374")
)

// Styles renders the pieces of the countdown display. A nil Styles renders plain text.
type Styles struct {
	work    lipgloss.Style
	rest    lipgloss.Style
	clock   lipgloss.Style
	banner  lipgloss.Style
	message lipgloss.Style
	plain   bool
}

// NewStyles returns the styles for a writer. Color support is detected from the
// writer, non terminal writers get plain text.
func NewStyles(w io.Writer, noColor bool) *Styles {
	r := lipgloss.NewRenderer(w)

	return &Styles{
		work:    r.NewStyle().Foreground(colorWork).Bold(true),
		rest:    r.NewStyle().Foreground(colorBreak).Bold(true),
		clock:   r.NewStyle().Foreground(colorClock).Bold(true),
		banner:  r.NewStyle().Foreground(colorBanner).Bold(true),
		message: r.NewStyle().Foreground(colorDim),
		plain:   noColor,
	}
}

// Label renders a stage label, work stages and breaks use different colors.
func (s *Styles) Label(text string, work bool) string {
	if s.isPlain() {
		return text
	}
	if work {
		return s.work.Render(text)
	}
	return s.rest.Render(text)
}

// Clock renders the remaining time.
func (s *Styles) Clock(text string) string {
	if s.isPlain() {
		return text
	}
	return s.clock.Render(text)
}

// Banner renders the stage complete banner.
func (s *Styles) Banner(text string) string {
	if s.isPlain() {
		return text
	}
	return s.banner.Render(text)
}

// Message renders informational messages.
func (s *Styles) Message(text string) string {
	if s.isPlain() {
		return text
	}
	return s.message.Render(text)
}

func (s *Styles) isPlain() bool { return s == nil || s.plain }
