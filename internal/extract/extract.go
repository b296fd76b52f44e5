// Package extract expands a driver archive into the working directory with 7-Zip.
package extract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/conn-castle/nvtrim/internal/messages"
	"github.com/conn-castle/nvtrim/internal/runner"
)

var (
	// ErrArchiveNotFound is returned when the archive path does not exist.
	ErrArchiveNotFound = errors.New(messages.ExtractArchiveNotFound)
	// ErrDestinationNotFound is returned when the destination is not an existing directory.
	ErrDestinationNotFound = errors.New(messages.ExtractDestinationNotFound)
)

// Extractor runs 7-Zip against an archive.
type Extractor struct {
	System  System
	Locator ToolLocator
	Runner  runner.Runner
}

// New returns an Extractor backed by the OS and the given locator.
func New(locator ToolLocator) *Extractor {
	return &Extractor{System: RealSystem{}, Locator: locator, Runner: runner.ExecRunner{}}
}

// Extract expands archive into dest, keeping folder structure and answering
// yes to every 7-Zip prompt. password is passed only when non-empty.
// Both paths are checked before 7-Zip is located or run.
func (e *Extractor) Extract(ctx context.Context, archive string, dest string, password string) (runner.Result, error) {
	if _, err := e.System.Stat(archive); err != nil {
		return runner.Result{ExitCode: -1, Message: messages.ExtractArchiveNotFound}, fmt.Errorf("%w: %s", ErrArchiveNotFound, archive)
	}
	info, err := e.System.Stat(dest)
	if err != nil || !info.IsDir() {
		return runner.Result{ExitCode: -1, Message: messages.ExtractDestinationNotFound}, fmt.Errorf("%w: %s", ErrDestinationNotFound, dest)
	}

	tool, err := e.Locator.Locate()
	if err != nil {
		return runner.Result{ExitCode: -1, Message: err.Error()}, err
	}

	res, err := e.Runner.Run(ctx, runner.Command{
		Path:   tool,
		Args:   Args(archive, dest, password),
		Silent: true,
	})
	if err != nil {
		res.Message = err.Error()
		return res, fmt.Errorf(messages.ExtractFailedFmt, filepath.Base(archive), err)
	}
	res.Message = messages.ExtractSucceeded
	return res, nil
}

// Args builds the 7-Zip command line: extract with full paths into dest,
// recurse subdirectories, assume yes, and supply the password if any.
func Args(archive string, dest string, password string) []string {
	args := []string{"x", archive, "-o" + dest, "-r", "-y"}
	if password != "" {
		args = append(args, "-p"+password)
	}
	return args
}
