package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/conn-castle/nvtrim/internal/messages"
)

// LinePrompter reads answers line by line, printing an error and asking
// again after each unacceptable one. There is no retry limit; only the end
// of input stops it.
type LinePrompter struct {
	In        io.Reader
	Out       io.Writer
	BaseDir   string
	BoolError string
	PathError string
	Stat      func(name string) (os.FileInfo, error)

	reader *bufio.Reader
}

// NewLinePrompter returns a LinePrompter reading from in and resolving
// relative paths against baseDir.
func NewLinePrompter(in io.Reader, out io.Writer, baseDir string) *LinePrompter {
	return &LinePrompter{
		In:        in,
		Out:       out,
		BaseDir:   baseDir,
		BoolError: messages.PromptBoolErrorDefault,
		PathError: messages.PromptPathErrorDefault,
		Stat:      os.Stat,
	}
}

// Bool asks until a truthy or falsy token is entered.
func (p *LinePrompter) Bool(message string, prompt string) (bool, error) {
	for {
		response, eof, err := p.ask(message, prompt)
		if err != nil {
			return false, err
		}
		if value, ok := ParseBool(response); ok {
			return value, nil
		}
		if eof {
			return false, fmt.Errorf("%w: "+messages.PromptBoolInvalidFmt, ErrNoResponse, response)
		}
		if err := p.println(orDefault(p.BoolError, messages.PromptBoolErrorDefault)); err != nil {
			return false, err
		}
	}
}

// Path asks until the answer resolves to an existing path and returns it in
// absolute form.
func (p *LinePrompter) Path(message string, prompt string) (string, error) {
	for {
		response, eof, err := p.ask(message, prompt)
		if err != nil {
			return "", err
		}
		if path, err := existingPath(p.Stat, p.BaseDir, response); err == nil {
			return path, nil
		}
		if eof {
			return "", ErrNoResponse
		}
		if err := p.println(orDefault(p.PathError, messages.PromptPathErrorDefault)); err != nil {
			return "", err
		}
	}
}

// ask prints message and prompt and reads one line. eof reports that input
// ended with this line; an empty final read is ErrNoResponse.
func (p *LinePrompter) ask(message string, prompt string) (string, bool, error) {
	if err := p.println(message); err != nil {
		return "", false, err
	}
	if _, err := fmt.Fprint(p.Out, prompt); err != nil {
		return "", false, err
	}
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	eof := errors.Is(err, io.EOF)
	response := strings.TrimSpace(line)
	if eof && response == "" {
		return "", true, ErrNoResponse
	}
	return response, eof, nil
}

func (p *LinePrompter) println(text string) error {
	_, err := fmt.Fprintln(p.Out, text)
	return err
}

func orDefault(value string, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
