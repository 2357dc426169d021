package pomo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slok/pomo/test/integration/testutils"
)

// Config holds integration test configuration loaded from environment variables.
type Config struct {
	Binary string
}

func (c *Config) defaults() error {
	if c.Binary == "" {
		c.Binary = "pomo"
	}

	// go test changes the CWD to the test package directory, relative paths
	// would be resolved against it.
	if !filepath.IsAbs(c.Binary) {
		return fmt.Errorf("POMO_INTEGRATION_BINARY must be an absolute path, got %q", c.Binary)
	}
	if _, err := os.Stat(c.Binary); err != nil {
		return fmt.Errorf("pomo binary not found at %q: %w", c.Binary, err)
	}

	return nil
}

// NewConfig loads integration test configuration from environment variables.
// If the config is invalid or the activation env var is not set, the test is skipped.
func NewConfig(t *testing.T) Config {
	t.Helper()

	const (
		envActivation = "POMO_INTEGRATION"
		envBinary     = "POMO_INTEGRATION_BINARY"
	)

	if os.Getenv(envActivation) != "true" {
		t.Skipf("Skipping integration test: %s is not set to 'true'", envActivation)
	}

	c := Config{
		Binary: os.Getenv(envBinary),
	}

	if err := c.defaults(); err != nil {
		t.Skipf("Skipping due to invalid config: %s", err)
	}

	return c
}

// isolatedEnv returns the env that isolates pomo from the user home profile.
func isolatedEnv(t *testing.T) []string {
	t.Helper()
	return []string{"HOME=" + t.TempDir()}
}

// RunCycle runs the timer with the given extra arguments.
func RunCycle(ctx context.Context, t *testing.T, config Config, args string) (stdout, stderr []byte, err error) {
	t.Helper()
	return testutils.RunPomo(ctx, isolatedEnv(t), config.Binary, "run --no-color "+args, true)
}

// RunCycleInterrupted runs the timer and interrupts it after the given time.
func RunCycleInterrupted(ctx context.Context, t *testing.T, config Config, args string, after time.Duration) (stdout, stderr []byte, err error) {
	t.Helper()
	return testutils.RunPomoInterrupted(ctx, isolatedEnv(t), config.Binary, "run --no-color "+args, true, after)
}

// RunConfig prints the effective configuration.
func RunConfig(ctx context.Context, t *testing.T, config Config, env []string, args string) (stdout, stderr []byte, err error) {
	t.Helper()
	return testutils.RunPomo(ctx, append(isolatedEnv(t), env...), config.Binary, "config "+args, true)
}
