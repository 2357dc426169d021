package terminal_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/pomo/internal/terminal"
)

func TestANSIClearer(t *testing.T) {
	// A buffer is not a terminal, so nothing should be written.
	var buf bytes.Buffer
	c := terminal.NewANSIClearer(&buf)

	err := c.Clear()

	assert.NoError(t, err)
	assert.Empty(t, buf.String())
	assert.False(t, terminal.IsTerminal(&buf))
}

func TestClearerFunc(t *testing.T) {
	calls := 0
	c := terminal.ClearerFunc(func() error {
		calls++
		if calls > 1 {
			return errors.New("boom")
		}
		return nil
	})

	assert.NoError(t, c.Clear())
	assert.Error(t, c.Clear())
	assert.Equal(t, 2, calls)
	assert.NoError(t, terminal.NoopClearer.Clear())
}

func TestStyles(t *testing.T) {
	tests := map[string]struct {
		styles *terminal.Styles
	}{
		"Nil styles should render plain text.": {
			styles: nil,
		},
		"No color styles should render plain text.": {
			styles: terminal.NewStyles(&bytes.Buffer{}, true),
		},
		"Non terminal writers should render plain text.": {
			styles: terminal.NewStyles(&bytes.Buffer{}, false),
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal("WORK", test.styles.Label("WORK", true))
			assert.Equal("SHORT BREAK", test.styles.Label("SHORT BREAK", false))
			assert.Equal("24:59", test.styles.Clock("24:59"))
			assert.Equal("[DING DING!]", test.styles.Banner("[DING DING!]"))
			assert.Equal("bye", test.styles.Message("bye"))
		})
	}
}
