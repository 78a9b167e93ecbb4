package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnsupportedPlatform is returned by the executor on systems without osascript.
var ErrUnsupportedPlatform = errors.New("notifications are only supported on macOS")

// Executor runs the external programs behind each notification surface.
type Executor interface {
	// Run executes name and waits for it to exit.
	Run(ctx context.Context, name string, args ...string) error

	// Start launches name detached. The process is never waited on and may outlive
	// the caller.
	Start(name string, args ...string) error
}

// NewExecutor returns the os/exec backed executor on macOS and one that fails with
// ErrUnsupportedPlatform everywhere else.
func NewExecutor() Executor {
	switch runtime.GOOS {
	case "darwin":
		return commandExecutor{}
	default:
		return unsupportedExecutor{goos: runtime.GOOS}
	}
}

// Platform returns the current operating system name
func Platform() string {
	return runtime.GOOS
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (commandExecutor) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	// Detached on purpose: the result is never collected.
	return cmd.Process.Release()
}

type unsupportedExecutor struct {
	goos string
}

func (e unsupportedExecutor) Run(_ context.Context, name string, _ ...string) error {
	return fmt.Errorf("%s on %s: %w", name, e.goos, ErrUnsupportedPlatform)
}

func (e unsupportedExecutor) Start(name string, _ ...string) error {
	return fmt.Errorf("%s on %s: %w", name, e.goos, ErrUnsupportedPlatform)
}
