package lint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const waitDelay = 2 * time.Second

// Invocation holds the captured result of one tool run against one file.
type Invocation struct {
	Output   string
	ExitCode int
}

// Invoker abstracts running the analysis tool for testability.
type Invoker interface {
	Invoke(ctx context.Context, file string, checks []string) (Invocation, error)
}

// ExecInvoker implements Invoker by running the tool as a child process.
type ExecInvoker struct {
	Tool      string
	Std       string
	ExtraArgs []string
	Timeout   time.Duration
	Dir       string
}

// Args returns the argument vector passed to the tool for file:
// --checks=<checks> <file> -- -std=<std> <extra...> <file>
func (e *ExecInvoker) Args(file string, checks []string) []string {
	args := []string{"--checks=" + strings.Join(checks, ","), file, "--"}
	if e.Std != "" {
		args = append(args, "-std="+e.Std)
	}
	args = append(args, e.ExtraArgs...)
	return append(args, file)
}

// Invoke runs the tool and returns its combined stdout and stderr.
// A non-zero exit is not an error; it is reported through ExitCode.
func (e *ExecInvoker) Invoke(ctx context.Context, file string, checks []string) (Invocation, error) {
	return e.run(ctx, e.Args(file, checks))
}

func (e *ExecInvoker) run(ctx context.Context, args []string) (Invocation, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, e.Tool, args...)
	cmd.Dir = e.Dir
	// Children of the tool may keep the output pipe open after it is killed.
	cmd.WaitDelay = waitDelay

	// One buffer for both streams keeps their relative order.
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	if err == nil {
		return Invocation{Output: buf.String()}, nil
	}

	if ctx.Err() == context.DeadlineExceeded {
		return Invocation{Output: buf.String(), ExitCode: -1}, fmt.Errorf("%s timed out after %s", e.Tool, e.Timeout)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Invocation{Output: buf.String(), ExitCode: exitErr.ExitCode()}, nil
	}
	return Invocation{Output: buf.String(), ExitCode: -1}, fmt.Errorf("exec %s: %w", e.Tool, err)
}
