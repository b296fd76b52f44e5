package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/nvtrim/internal/config"
	"github.com/conn-castle/nvtrim/internal/messages"
	"github.com/conn-castle/nvtrim/internal/prompt"
	"github.com/conn-castle/nvtrim/internal/trim"
)

var runTrim = trim.Run
var getwd = os.Getwd
var isInteractive = prompt.IsInteractive

type rootFlags struct {
	configPath string
	archive    string
	password   string
	launch     bool
	noLaunch   bool
	plain      bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", messages.FlagConfig)
	cmd.Flags().StringVar(&flags.archive, "archive", "", messages.FlagArchive)
	cmd.Flags().StringVar(&flags.password, "password", "", messages.FlagPassword)
	cmd.Flags().BoolVar(&flags.launch, "launch", false, messages.FlagLaunch)
	cmd.Flags().BoolVar(&flags.noLaunch, "no-launch", false, messages.FlagNoLaunch)
	cmd.Flags().BoolVar(&flags.plain, "plain", false, messages.FlagPlain)
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, messages.FlagVerbose)

	return cmd
}

func runRoot(cmd *cobra.Command, flags rootFlags) error {
	if flags.launch && flags.noLaunch {
		return errors.New(messages.FlagLaunchConflict)
	}
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	cwd, err := getwd()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr(), flags.verbose)
	opts := trim.Options{
		Config:   *cfg,
		Prompter: newPrompter(flags.plain, cmd.InOrStdin(), out, cwd),
		Out:      out,
		Logger:   logger,
		Password: flags.password,
	}
	if flags.archive != "" {
		archive, err := prompt.ResolvePath(cwd, flags.archive)
		if err != nil {
			return err
		}
		opts.Archive = archive
	}
	if flags.launch || flags.noLaunch {
		launch := flags.launch
		opts.Launch = &launch
	}

	printBanner(out)
	outcome, runErr := runTrim(cmd.Context(), opts)
	if flags.verbose && len(outcome.Manifest.Removed) > 0 {
		_, _ = fmt.Fprintln(out, messages.ManifestDiffHeader)
		_, _ = fmt.Fprint(out, outcome.Manifest.Diff())
	}
	_, _ = fmt.Fprintln(out, messages.FinishedMessage)
	if runErr == nil {
		return nil
	}

	_, _ = color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), messages.RunFailedFmt, runErr)
	logger.Debug("run ended", "state", outcome.State, "workdir", outcome.WorkDir)
	if cfg.FailureExitCode == 0 {
		return nil
	}
	return &SilentExitError{Code: cfg.FailureExitCode}
}

// newPrompter picks the huh prompter on interactive terminals unless plain
// is set; everything else reads answers line by line.
func newPrompter(plain bool, in io.Reader, out io.Writer, baseDir string) prompt.Prompter {
	if !plain && isInteractive() {
		return prompt.NewHuhPrompter(baseDir)
	}
	p := prompt.NewLinePrompter(in, out, baseDir)
	p.PathError = messages.PromptArchiveError
	return p
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: messages.LoggerPrefix,
		Level:  level,
	})
}

func printBanner(out io.Writer) {
	_, _ = fmt.Fprintln(out, messages.BannerRule)
	_, _ = color.New(color.Bold).Fprintln(out, messages.BannerTitle)
	_, _ = fmt.Fprintln(out, messages.BannerRule)
}
