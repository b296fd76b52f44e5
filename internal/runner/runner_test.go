//go:build !windows

package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/nvtrim/internal/testutil"
)

func TestExecRunnerSuccess(t *testing.T) {
	stub := testutil.WriteStub(t, t.TempDir(), "ok")

	res, err := ExecRunner{}.Run(context.Background(), Command{Path: stub, Silent: true})
	require.NoError(t, err)
	assert.True(t, res.Success())
	assert.Equal(t, 0, res.ExitCode)
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	stub := testutil.WriteStubWithExit(t, t.TempDir(), "7z", 2)

	res, err := ExecRunner{}.Run(context.Background(), Command{Path: stub, Silent: true})
	require.Error(t, err)
	assert.False(t, res.Success())
	assert.Equal(t, 2, res.ExitCode)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Equal(t, "7z exited with code 2", exitErr.Error())
}

func TestExecRunnerPassesArgs(t *testing.T) {
	stub := testutil.WriteStubExpectArg(t, t.TempDir(), "setup.exe", "-passive")

	_, err := ExecRunner{}.Run(context.Background(), Command{Path: stub, Args: []string{"-nosplash", "-passive"}, Silent: true})
	require.NoError(t, err)

	_, err = ExecRunner{}.Run(context.Background(), Command{Path: stub, Args: []string{"-nosplash"}, Silent: true})
	require.Error(t, err)
}

func TestExecRunnerSilentDiscardsOutput(t *testing.T) {
	stub := testutil.WriteStub(t, t.TempDir(), "noisy")
	var stdout, stderr bytes.Buffer

	_, err := ExecRunner{}.Run(context.Background(), Command{Path: stub, Silent: true, Stdout: &stdout, Stderr: &stderr})
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())

	_, err = ExecRunner{}.Run(context.Background(), Command{Path: stub, Stdout: &stdout, Stderr: &stderr})
	require.NoError(t, err)
	assert.Equal(t, "noise\n", stdout.String())
	assert.Equal(t, "noise\n", stderr.String())
}

func TestExecRunnerUsesDir(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "pwd.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\npwd\n"), 0o755))
	work := t.TempDir()
	var stdout bytes.Buffer

	_, err := ExecRunner{}.Run(context.Background(), Command{Path: script, Dir: work, Stdout: &stdout})
	require.NoError(t, err)
	want, _ := filepath.EvalSymlinks(work)
	got, _ := filepath.EvalSymlinks(strings.TrimSpace(stdout.String()))
	assert.Equal(t, want, got)
}

func TestExecRunnerStartFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	res, err := ExecRunner{}.Run(context.Background(), Command{Path: missing})
	require.Error(t, err)
	assert.Equal(t, -1, res.ExitCode)
	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr))
	assert.Contains(t, err.Error(), "start missing")
}

func TestExecRunnerRequiresPath(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), Command{})
	require.Error(t, err)
}

func TestResultSuccess(t *testing.T) {
	assert.True(t, Result{}.Success())
	assert.False(t, Result{ExitCode: 1}.Success())
	assert.False(t, Result{ExitCode: -1}.Success())
}
