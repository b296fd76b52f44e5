package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/conn-castle/nvtrim/internal/messages"
)

// IsInteractive reports whether stdin and stdout are both interactive terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// HuhPrompter renders the same questions as LinePrompter with
// charmbracelet/huh. Invalid answers are rejected inline by the field
// validator, so the user stays on the field until the answer is accepted.
type HuhPrompter struct {
	BaseDir    string
	Stat       func(name string) (os.FileInfo, error)
	isTerminal func() bool
}

// NewHuhPrompter returns a HuhPrompter resolving relative paths against baseDir.
func NewHuhPrompter(baseDir string) *HuhPrompter {
	return &HuhPrompter{BaseDir: baseDir, Stat: os.Stat, isTerminal: IsInteractive}
}

// Bool asks for a yes/no token; the prompt text shows the accepted answers.
func (p *HuhPrompter) Bool(message string, prompt string) (bool, error) {
	var response string
	field := huh.NewInput().
		Title(strings.TrimSpace(message)).
		Prompt(prompt).
		Value(&response).
		Validate(validateBool)
	if err := p.run(field); err != nil {
		return false, err
	}
	value, ok := ParseBool(response)
	if !ok {
		return false, fmt.Errorf("%w: "+messages.PromptBoolInvalidFmt, ErrNoResponse, response)
	}
	return value, nil
}

// Path asks for a path that must exist and returns its absolute form.
func (p *HuhPrompter) Path(message string, prompt string) (string, error) {
	var response string
	field := huh.NewInput().
		Title(strings.TrimSpace(message)).
		Prompt(prompt).
		Value(&response).
		Validate(p.validatePath)
	if err := p.run(field); err != nil {
		return "", err
	}
	path, err := existingPath(p.Stat, p.BaseDir, response)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoResponse, err)
	}
	return path, nil
}

func validateBool(response string) error {
	if _, ok := ParseBool(response); !ok {
		return errors.New(messages.PromptBoolErrorDefault)
	}
	return nil
}

func (p *HuhPrompter) validatePath(response string) error {
	if _, err := existingPath(p.Stat, p.BaseDir, response); err != nil {
		return errors.New(messages.PromptPathErrorDefault)
	}
	return nil
}

// keyMap binds Esc as well as Ctrl+C to quit; both abort the run.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))
	return km
}

func (p *HuhPrompter) run(field huh.Field) error {
	checker := p.isTerminal
	if checker == nil {
		checker = IsInteractive
	}
	if !checker() {
		return errors.New(messages.PromptRequiresTerminal)
	}
	form := huh.NewForm(huh.NewGroup(field)).
		WithKeyMap(keyMap()).
		WithProgramOptions(tea.WithOutput(os.Stderr))
	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}
