// Package runner runs external programs synchronously and reports their exit code.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/conn-castle/nvtrim/internal/messages"
)

// Command describes one external program invocation.
type Command struct {
	Path string
	Args []string
	Dir  string
	// Silent discards the program's stdout and stderr.
	Silent bool
	Stdout io.Writer
	Stderr io.Writer
}

// String returns the executable name for messages.
func (c Command) String() string {
	return filepath.Base(c.Path)
}

// Result is the outcome of a finished command.
type Result struct {
	ExitCode int
	Message  string
}

// Success reports whether the command exited with status zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// ExitError reports a command that ran and exited non-zero.
type ExitError struct {
	Name string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf(messages.RunnerExitFmt, e.Name, e.Code)
}

// Runner runs a command to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct{}

// Run starts the command and blocks until it exits. A non-zero exit yields an
// *ExitError alongside a Result carrying the code (-1 when killed by a
// signal); a start failure yields ExitCode -1.
func (ExecRunner) Run(ctx context.Context, c Command) (Result, error) {
	if c.Path == "" {
		return Result{ExitCode: -1}, errors.New(messages.RunnerPathRequired)
	}
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir
	if !c.Silent {
		cmd.Stdout = c.Stdout
		cmd.Stderr = c.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return Result{}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		return Result{ExitCode: code}, &ExitError{Name: c.String(), Code: code}
	}
	return Result{ExitCode: -1}, fmt.Errorf(messages.RunnerStartFmt, c.String(), err)
}
