// Package launch runs the trimmed driver installer unattended.
package launch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/nvtrim/internal/config"
	"github.com/conn-castle/nvtrim/internal/messages"
	"github.com/conn-castle/nvtrim/internal/runner"
)

var (
	// ErrInstallerNotFound is returned when the installer executable is missing from the working directory.
	ErrInstallerNotFound = errors.New(messages.LaunchInstallerNotFound)
	// ErrElevationRequired is returned when Windows refuses to start the
	// installer because nvtrim is not running as administrator.
	ErrElevationRequired = errors.New(messages.LaunchElevationRequired)
)

// Launcher runs the installer found in a working directory.
type Launcher struct {
	Installer config.InstallerConfig
	Runner    runner.Runner
	Stat      func(name string) (os.FileInfo, error)
	// NeedsElevation reports whether a start error means the installer must
	// be run from an elevated process. Nil uses the platform check.
	NeedsElevation func(err error) bool
}

// New returns a Launcher that runs installer with os/exec.
func New(installer config.InstallerConfig) *Launcher {
	return &Launcher{Installer: installer, Runner: runner.ExecRunner{}, Stat: os.Stat, NeedsElevation: needsElevation}
}

// Launch runs the installer inside workdir with the configured silent flags
// and blocks until it exits. Installer output is discarded.
func (l *Launcher) Launch(ctx context.Context, workdir string) (runner.Result, error) {
	exe := filepath.Join(workdir, l.Installer.Executable)
	stat := l.Stat
	if stat == nil {
		stat = os.Stat
	}
	if _, err := stat(exe); err != nil {
		return runner.Result{ExitCode: -1}, fmt.Errorf("%w: "+messages.LaunchInstallerNotFoundFmt, ErrInstallerNotFound, exe)
	}

	res, err := l.Runner.Run(ctx, runner.Command{
		Path:   exe,
		Args:   append([]string(nil), l.Installer.Flags...),
		Dir:    workdir,
		Silent: true,
	})
	if err != nil && l.needsElevation(err) {
		res.ExitCode = -1
		res.Message = messages.LaunchElevationRequired
		return res, fmt.Errorf("%w: %w", ErrElevationRequired, err)
	}
	if err != nil {
		res.Message = err.Error()
		return res, fmt.Errorf(messages.LaunchFailedFmt, l.Installer.Executable, err)
	}
	res.Message = messages.LaunchSucceeded
	return res, nil
}

func (l *Launcher) needsElevation(err error) bool {
	if l.NeedsElevation != nil {
		return l.NeedsElevation(err)
	}
	return needsElevation(err)
}
