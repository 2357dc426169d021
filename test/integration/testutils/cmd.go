package testutils

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"syscall"
	"time"
)

var multiSpaceRegex = regexp.MustCompile(" +")

// RunPomo executes a pomo command with the given arguments string (split by spaces).
func RunPomo(ctx context.Context, env []string, binary, cmdArgs string, nolog bool) (stdout, stderr []byte, err error) {
	cmd := newPomoCmd(ctx, env, binary, splitArgs(cmdArgs), nolog)

	var outData, errData bytes.Buffer
	cmd.Stdout = &outData
	cmd.Stderr = &errData

	err = cmd.Run()

	return outData.Bytes(), errData.Bytes(), err
}

// RunPomoInterrupted executes a pomo command and sends it an interrupt signal
// after the given time, then waits for it to exit.
func RunPomoInterrupted(ctx context.Context, env []string, binary, cmdArgs string, nolog bool, after time.Duration) (stdout, stderr []byte, err error) {
	cmd := newPomoCmd(ctx, env, binary, splitArgs(cmdArgs), nolog)

	var outData, errData bytes.Buffer
	cmd.Stdout = &outData
	cmd.Stderr = &errData

	if err := cmd.Start(); err != nil {
		return nil, nil, err
	}

	select {
	case <-ctx.Done():
	case <-time.After(after):
		_ = cmd.Process.Signal(syscall.SIGINT)
	}

	err = cmd.Wait()

	return outData.Bytes(), errData.Bytes(), err
}

func splitArgs(cmdArgs string) []string {
	cmdArgs = strings.TrimSpace(cmdArgs)
	cmdArgs = multiSpaceRegex.ReplaceAllString(cmdArgs, " ")
	if cmdArgs == "" {
		return nil
	}
	return strings.Split(cmdArgs, " ")
}

func newPomoCmd(ctx context.Context, env []string, binary string, args []string, nolog bool) *exec.Cmd {
	cmd := exec.CommandContext(ctx, binary, args...)

	// Set env: os.Environ() first, then custom env overrides on top.
	// In Go's exec.Cmd, when duplicate keys exist, the last one wins.
	newEnv := append([]string{}, os.Environ()...)
	newEnv = append(newEnv, env...)
	if nolog {
		newEnv = append(newEnv, "POMO_NO_LOG=true")
	}
	cmd.Env = newEnv

	return cmd
}
