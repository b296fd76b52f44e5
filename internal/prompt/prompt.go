// Package prompt collects validated answers from the user.
package prompt

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/text/unicode/norm"

	"github.com/conn-castle/nvtrim/internal/messages"
)

var (
	// ErrNoResponse is returned when input ends before a valid answer is given.
	ErrNoResponse = errors.New(messages.PromptNoResponse)
	// ErrAborted is returned when the user cancels an interactive prompt.
	ErrAborted = errors.New(messages.PromptAborted)
)

// Prompter asks the questions the trim run needs. Both methods keep asking
// until they receive an acceptable answer.
type Prompter interface {
	Bool(message string, prompt string) (bool, error)
	Path(message string, prompt string) (string, error)
}

var (
	truthy = []string{"true", "t", "y", "yes", "1"}
	falsy  = []string{"false", "f", "n", "no", "0"}
)

// ParseBool interprets a yes/no answer, ignoring case and surrounding space.
// ok is false for anything outside the recognised tokens.
func ParseBool(response string) (value bool, ok bool) {
	r := strings.ToLower(strings.TrimSpace(norm.NFC.String(response)))
	for _, token := range truthy {
		if r == token {
			return true, true
		}
	}
	for _, token := range falsy {
		if r == token {
			return false, true
		}
	}
	return false, false
}

// ResolvePath turns a user-entered path into an absolute one. Relative input
// is joined onto baseDir, a leading ~ is expanded, and one pair of
// surrounding double quotes (as pasted from Explorer) is dropped. The bytes
// of the name are kept as typed so decomposed file names still resolve.
func ResolvePath(baseDir string, response string) (string, error) {
	r := strings.TrimSpace(response)
	if len(r) >= 2 && strings.HasPrefix(r, `"`) && strings.HasSuffix(r, `"`) {
		r = strings.TrimSpace(r[1 : len(r)-1])
	}
	if r == "" {
		return "", errors.New(messages.PromptPathEmpty)
	}
	expanded, err := homedir.Expand(r)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(baseDir, expanded)
	}
	return filepath.Abs(expanded)
}

// existingPath resolves response and requires the result to exist.
func existingPath(stat func(string) (os.FileInfo, error), baseDir string, response string) (string, error) {
	path, err := ResolvePath(baseDir, response)
	if err != nil {
		return "", err
	}
	if stat == nil {
		stat = os.Stat
	}
	if _, err := stat(path); err != nil {
		return "", err
	}
	return path, nil
}
