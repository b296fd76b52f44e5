// Package trim runs one trim of a downloaded driver package from archive
// selection through the optional installer launch.
package trim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/conn-castle/nvtrim/internal/bloat"
	"github.com/conn-castle/nvtrim/internal/config"
	"github.com/conn-castle/nvtrim/internal/extract"
	"github.com/conn-castle/nvtrim/internal/launch"
	"github.com/conn-castle/nvtrim/internal/manifest"
	"github.com/conn-castle/nvtrim/internal/messages"
	"github.com/conn-castle/nvtrim/internal/prompt"
	"github.com/conn-castle/nvtrim/internal/runner"
	"github.com/conn-castle/nvtrim/internal/workdir"
)

var (
	// ErrExtractFailed reports that the archive could not be unpacked.
	ErrExtractFailed = errors.New(messages.TrimErrExtract)
	// ErrPatchFailed reports that the manifest could not be rewritten.
	ErrPatchFailed = errors.New(messages.TrimErrPatch)
	// ErrLaunchFailed reports that the installer did not run successfully.
	ErrLaunchFailed = errors.New(messages.TrimErrLaunch)
	// ErrUnexpected wraps failures outside the expected step errors, including panics.
	ErrUnexpected = errors.New(messages.TrimErrUnexpected)
)

// Extractor unpacks an archive into a destination folder.
type Extractor interface {
	Extract(ctx context.Context, archive string, dest string, password string) (runner.Result, error)
}

// Remover prunes the working directory down to the allow-list.
type Remover interface {
	Remove(dir string, allow config.AllowList) (bloat.Report, error)
}

// Patcher drops placeholder references from the manifest.
type Patcher interface {
	Patch(path string, placeholders []config.Placeholder) (manifest.Report, error)
}

// Launcher starts the trimmed installer.
type Launcher interface {
	Launch(ctx context.Context, workdir string) (runner.Result, error)
}

// Workdirs creates and removes per-run working directories.
type Workdirs interface {
	Create() (string, error)
	Remove(path string) error
}

// State names a step of the run.
type State int

const (
	StateStart State = iota
	StateCollectPath
	StateCreateWorkdir
	StateExtract
	StateRemoveBloat
	StatePatchManifest
	StateCollectLaunchChoice
	StateLaunch
	StateCleanup
	StateEnd
)

var stateNames = [...]string{
	StateStart:               "start",
	StateCollectPath:         "collect-path",
	StateCreateWorkdir:       "create-workdir",
	StateExtract:             "extract",
	StateRemoveBloat:         "remove-bloat",
	StatePatchManifest:       "patch-manifest",
	StateCollectLaunchChoice: "collect-launch-choice",
	StateLaunch:              "launch",
	StateCleanup:             "cleanup",
	StateEnd:                 "end",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Options configures a run. Nil components are built from Config.
type Options struct {
	Config    config.Config
	Prompter  prompt.Prompter
	Extractor Extractor
	Remover   Remover
	Patcher   Patcher
	Launcher  Launcher
	Workdirs  Workdirs
	Out       io.Writer
	Logger    *log.Logger

	// Archive skips the path prompt when set.
	Archive  string
	Password string
	// Launch skips the launch prompt when set.
	Launch *bool
}

// Outcome records how far a run got. State is StateEnd after a successful
// run and the failing step otherwise.
type Outcome struct {
	State     State
	WorkDir   string
	Launched  bool
	CleanedUp bool
	Bloat     bloat.Report
	Manifest  manifest.Report
}

type run struct {
	opts    Options
	out     io.Writer
	logger  *log.Logger
	outcome Outcome
}

// Run executes the trim steps in order. Extraction, manifest and launch
// failures stop the run and are returned wrapped in their sentinel; a panic
// in any step is recovered and reported as ErrUnexpected.
func Run(ctx context.Context, opts Options) (outcome Outcome, err error) {
	r := newRun(opts)
	defer func() {
		if rec := recover(); rec != nil {
			perr := fmt.Errorf(messages.TrimPanicFmt, rec)
			outcome, err = r.unexpected(perr)
		}
	}()
	return r.execute(ctx)
}

func newRun(opts Options) *run {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	cfg := opts.Config
	if opts.Extractor == nil {
		opts.Extractor = extract.New(extract.NewLocator(cfg.Extractor))
	}
	if opts.Remover == nil {
		opts.Remover = bloat.New(out, logger)
	}
	if opts.Patcher == nil {
		opts.Patcher = manifest.New(out)
	}
	if opts.Launcher == nil {
		opts.Launcher = launch.New(cfg.Installer)
	}
	if opts.Workdirs == nil {
		opts.Workdirs = workdir.NewManager(cfg.AppName)
	}
	return &run{opts: opts, out: out, logger: logger}
}

func (r *run) execute(ctx context.Context) (Outcome, error) {
	cfg := r.opts.Config
	if r.opts.Prompter == nil && (r.opts.Archive == "" || r.opts.Launch == nil) {
		return r.outcome, errors.New(messages.TrimPrompterRequired)
	}

	r.enter(StateCollectPath)
	archive, err := r.archive()
	if err != nil {
		return r.outcome, err
	}
	r.logger.Debug("archive selected", "path", archive)

	r.enter(StateCreateWorkdir)
	r.step(messages.TrimStepWorkdir)
	dir, err := r.opts.Workdirs.Create()
	if err != nil {
		return r.unexpected(err)
	}
	r.outcome.WorkDir = dir
	r.logger.Debug("working directory created", "path", dir)

	r.enter(StateExtract)
	r.step(messages.TrimStepExtract)
	result, err := r.opts.Extractor.Extract(ctx, archive, dir, r.opts.Password)
	if err != nil {
		r.failure(messages.TrimExtractFailed)
		r.logger.Error(messages.TrimErrExtract, "archive", archive, "err", err)
		r.keptWorkdir()
		return r.outcome, fmt.Errorf("%w: %w", ErrExtractFailed, err)
	}
	r.success(result.Message)

	r.enter(StateRemoveBloat)
	r.step(messages.TrimStepBloat)
	report, err := r.opts.Remover.Remove(dir, cfg.Allow)
	r.outcome.Bloat = report
	if err != nil {
		r.logger.Warn(messages.BloatItemFailedLog, "err", err)
	}
	r.logger.Debug("bloat removed", "deleted", len(report.Deleted), "kept", len(report.Kept), "failed", len(report.Failures))

	r.enter(StatePatchManifest)
	r.step(messages.TrimStepManifest)
	patched, err := r.opts.Patcher.Patch(filepath.Join(dir, cfg.Manifest.File), cfg.Placeholders)
	r.outcome.Manifest = patched
	if err != nil {
		r.logger.Error(messages.TrimErrPatch, "err", err)
		r.keptWorkdir()
		return r.outcome, fmt.Errorf("%w: %w", ErrPatchFailed, err)
	}
	if len(patched.Removed) == 0 {
		r.println(messages.TrimNothingRemoved)
	}

	r.enter(StateCollectLaunchChoice)
	launchNow, err := r.launchChoice()
	if err != nil {
		return r.outcome, err
	}
	if !launchNow {
		r.keptWorkdir()
		r.enter(StateEnd)
		return r.outcome, nil
	}

	r.enter(StateLaunch)
	r.step(messages.TrimStepLaunch)
	r.println(messages.TrimInstallRunning)
	result, err = r.opts.Launcher.Launch(ctx, dir)
	if err != nil {
		r.failure(messages.TrimLaunchFailed)
		r.logger.Error(messages.TrimErrLaunch, "err", err)
		r.keptWorkdir()
		return r.outcome, fmt.Errorf("%w: %w", ErrLaunchFailed, err)
	}
	r.outcome.Launched = true
	r.println(messages.TrimInstallCompleted)
	r.success(result.Message)

	r.enter(StateCleanup)
	r.step(messages.TrimStepCleanup)
	if err := r.opts.Workdirs.Remove(dir); err != nil {
		r.logger.Warn(messages.TrimCleanupFailed, "path", dir, "err", err)
		r.keptWorkdir()
	} else {
		r.outcome.CleanedUp = true
	}

	r.enter(StateEnd)
	return r.outcome, nil
}

func (r *run) archive() (string, error) {
	if r.opts.Archive != "" {
		return r.opts.Archive, nil
	}
	return r.opts.Prompter.Path(messages.PromptArchiveMessage, messages.PromptArchiveLabel)
}

func (r *run) launchChoice() (bool, error) {
	if r.opts.Launch != nil {
		return *r.opts.Launch, nil
	}
	return r.opts.Prompter.Bool(messages.PromptLaunchMessage, messages.PromptLaunchLabel)
}

func (r *run) enter(state State) {
	r.outcome.State = state
}

func (r *run) unexpected(err error) (Outcome, error) {
	r.failure(fmt.Sprintf(messages.TrimUnexpectedFmt, err))
	r.logger.Error(messages.TrimErrUnexpected, "state", r.outcome.State, "err", err)
	return r.outcome, fmt.Errorf("%w: %w", ErrUnexpected, err)
}

func (r *run) keptWorkdir() {
	if r.outcome.WorkDir == "" {
		return
	}
	_, _ = fmt.Fprintf(r.out, messages.TrimWorkdirKeptFmt, r.outcome.WorkDir)
}

func (r *run) step(text string) {
	_, _ = color.New(color.Bold).Fprintln(r.out, text)
}

func (r *run) success(text string) {
	if text == "" {
		return
	}
	_, _ = color.New(color.FgGreen).Fprintln(r.out, text)
}

func (r *run) failure(text string) {
	_, _ = color.New(color.FgRed).Fprintln(r.out, text)
}

func (r *run) println(text string) {
	_, _ = fmt.Fprintln(r.out, text)
}
