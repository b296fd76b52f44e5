package extract

import (
	"context"
	"errors"

	"github.com/conn-castle/nvtrim/internal/runner"
)

// recordingRunner captures commands and returns a canned exit code.
type recordingRunner struct {
	exitCode int
	startErr error
	calls    []runner.Command
}

func (r *recordingRunner) Run(_ context.Context, cmd runner.Command) (runner.Result, error) {
	r.calls = append(r.calls, cmd)
	if r.startErr != nil {
		return runner.Result{ExitCode: -1}, r.startErr
	}
	if r.exitCode != 0 {
		return runner.Result{ExitCode: r.exitCode}, &runner.ExitError{Name: cmd.String(), Code: r.exitCode}
	}
	return runner.Result{}, nil
}

type fixedLocator struct {
	path string
	err  error
}

func (l fixedLocator) Locate() (string, error) {
	return l.path, l.err
}

var errLocate = errors.New("locate failed")
