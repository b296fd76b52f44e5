package main

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

	"github.com/conn-castle/nvtrim/internal/config"
	"github.com/conn-castle/nvtrim/internal/manifest"
	"github.com/conn-castle/nvtrim/internal/messages"
	"github.com/conn-castle/nvtrim/internal/prompt"
	"github.com/conn-castle/nvtrim/internal/trim"
)

type trimCall struct {
	opts  trim.Options
	calls int
}

func stubTrim(t *testing.T, outcome trim.Outcome, err error) *trimCall {
	t.Helper()
	call := &trimCall{}
	orig := runTrim
	t.Cleanup(func() { runTrim = orig })
	runTrim = func(ctx context.Context, opts trim.Options) (trim.Outcome, error) {
		call.opts = opts
		call.calls++
		return outcome, err
	}
	return call
}

func stubEnv(t *testing.T, cwd string, interactive bool) {
	t.Helper()
	origGetwd, origInteractive := getwd, isInteractive
	t.Cleanup(func() {
		getwd = origGetwd
		isInteractive = origInteractive
	})
	getwd = func() (string, error) { return cwd, nil }
	isInteractive = func() bool { return interactive }
}

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_FlagsPopulateOptions(t *testing.T) {
	cwd := t.TempDir()
	stubEnv(t, cwd, false)
	call := stubTrim(t, trim.Outcome{State: trim.StateEnd}, nil)

	stdout, _, err := runCmd(t, "--archive", "driver.zip", "--password", "pw", "--no-launch")
	require.NoError(t, err)
	require.Equal(t, 1, call.calls)

	assert.Equal(t, filepath.Join(cwd, "driver.zip"), call.opts.Archive)
	assert.Equal(t, "pw", call.opts.Password)
	require.NotNil(t, call.opts.Launch)
	assert.False(t, *call.opts.Launch)
	assert.Equal(t, *config.Default(), call.opts.Config)
	assert.Contains(t, stdout, strings.TrimSpace(messages.BannerTitle))
	assert.Contains(t, stdout, strings.TrimSpace(messages.FinishedMessage))
}

func TestRoot_NoFlagsLeavesAnswersToPrompter(t *testing.T) {
	stubEnv(t, t.TempDir(), false)
	call := stubTrim(t, trim.Outcome{State: trim.StateEnd}, nil)

	_, _, err := runCmd(t)
	require.NoError(t, err)
	assert.Empty(t, call.opts.Archive)
	assert.Nil(t, call.opts.Launch)

	line, ok := call.opts.Prompter.(*prompt.LinePrompter)
	require.True(t, ok, "expected line prompter, got %T", call.opts.Prompter)
	assert.Equal(t, messages.PromptArchiveError, line.PathError)
}

func TestRoot_InteractiveUsesHuhUnlessPlain(t *testing.T) {
	stubEnv(t, t.TempDir(), true)
	call := stubTrim(t, trim.Outcome{State: trim.StateEnd}, nil)

	_, _, err := runCmd(t, "--launch")
	require.NoError(t, err)
	_, ok := call.opts.Prompter.(*prompt.HuhPrompter)
	assert.True(t, ok, "expected huh prompter, got %T", call.opts.Prompter)
	require.NotNil(t, call.opts.Launch)
	assert.True(t, *call.opts.Launch)

	_, _, err = runCmd(t, "--plain")
	require.NoError(t, err)
	_, ok = call.opts.Prompter.(*prompt.LinePrompter)
	assert.True(t, ok, "expected line prompter, got %T", call.opts.Prompter)
}

func TestRoot_LaunchFlagsConflict(t *testing.T) {
	stubEnv(t, t.TempDir(), false)
	call := stubTrim(t, trim.Outcome{}, nil)

	_, _, err := runCmd(t, "--launch", "--no-launch")
	require.EqualError(t, err, messages.FlagLaunchConflict)
	assert.Zero(t, call.calls)
}

func TestRoot_FailureUsesConfiguredExitCode(t *testing.T) {
	stubEnv(t, t.TempDir(), false)
	stubTrim(t, trim.Outcome{State: trim.StateExtract}, trim.ErrExtractFailed)

	_, stderr, err := runCmd(t, "--plain")
	var silent *SilentExitError
	require.True(t, errors.As(err, &silent), "expected SilentExitError, got %v", err)
	assert.Equal(t, config.DefaultFailureExitCode, silent.Code)
	assert.Contains(t, stderr, messages.TrimErrExtract)

	cfgPath := filepath.Join(t.TempDir(), "nvtrim.toml")
	if err := os.WriteFile(cfgPath, []byte("failure_exit_code = 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, err = runCmd(t, "--plain", "--config", cfgPath)
	require.NoError(t, err)

	if err := os.WriteFile(cfgPath, []byte("failure_exit_code = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, err = runCmd(t, "--plain", "--config", cfgPath)
	require.True(t, errors.As(err, &silent))
	assert.Equal(t, 3, silent.Code)
}

func TestRoot_InvalidConfigIsReported(t *testing.T) {
	stubEnv(t, t.TempDir(), false)
	call := stubTrim(t, trim.Outcome{}, nil)

	cfgPath := filepath.Join(t.TempDir(), "nvtrim.toml")
	if err := os.WriteFile(cfgPath, []byte("unknown_key = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, err := runCmd(t, "--config", cfgPath)
	require.ErrorIs(t, err, config.ErrConfigValidation)
	assert.Zero(t, call.calls)
}

func TestRoot_VerbosePrintsManifestDiff(t *testing.T) {
	stubEnv(t, t.TempDir(), false)
	outcome := trim.Outcome{
		State: trim.StateEnd,
		Manifest: manifest.Report{
			Path:    "setup.cfg",
			Removed: []manifest.Removal{{Name: "${EulaHtmlFile}"}},
			Before:  []byte("<setup>\n<file name=\"${EulaHtmlFile}\"/>\n</setup>\n"),
			After:   []byte("<setup>\n</setup>\n"),
		},
	}
	stubTrim(t, outcome, nil)

	stdout, _, err := runCmd(t, "--verbose", "--no-launch")
	require.NoError(t, err)
	assert.Contains(t, stdout, strings.TrimSpace(messages.ManifestDiffHeader))
	assert.Contains(t, stdout, `-<file name="${EulaHtmlFile}"/>`)

	stdout, _, err = runCmd(t, "--no-launch")
	require.NoError(t, err)
	assert.NotContains(t, stdout, strings.TrimSpace(messages.ManifestDiffHeader))
}

func TestRoot_GetwdError(t *testing.T) {
	stubEnv(t, "", false)
	getwd = func() (string, error) { return "", errors.New("getwd failed") }
	stubTrim(t, trim.Outcome{}, nil)

	_, _, err := runCmd(t)
	require.EqualError(t, err, "getwd failed")
}

func TestNewLogger_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
