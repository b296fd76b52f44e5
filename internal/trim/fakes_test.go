package trim

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/conn-castle/nvtrim/internal/bloat"
	"github.com/conn-castle/nvtrim/internal/config"
	"github.com/conn-castle/nvtrim/internal/manifest"
	"github.com/conn-castle/nvtrim/internal/runner"
)

var errBoom = errors.New("boom")

type fakePrompter struct {
	path      string
	pathErr   error
	launch    bool
	launchErr error
	pathAsked int
	boolAsked int
}

func (p *fakePrompter) Path(string, string) (string, error) {
	p.pathAsked++
	return p.path, p.pathErr
}

func (p *fakePrompter) Bool(string, string) (bool, error) {
	p.boolAsked++
	return p.launch, p.launchErr
}

type fakeExtractor struct {
	err     error
	files   map[string]string
	archive string
	dest    string
	pw      string
	calls   int
}

func (e *fakeExtractor) Extract(_ context.Context, archive string, dest string, password string) (runner.Result, error) {
	e.calls++
	e.archive, e.dest, e.pw = archive, dest, password
	if e.err != nil {
		return runner.Result{ExitCode: 2}, e.err
	}
	for name, content := range e.files {
		path := filepath.Join(dest, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return runner.Result{ExitCode: -1}, err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return runner.Result{ExitCode: -1}, err
		}
	}
	return runner.Result{Message: "extracted"}, nil
}

type fakeRemover struct {
	err   error
	calls int
}

func (r *fakeRemover) Remove(string, config.AllowList) (bloat.Report, error) {
	r.calls++
	return bloat.Report{}, r.err
}

type fakePatcher struct {
	err     error
	removed []manifest.Removal
	path    string
	calls   int
	panics  bool
}

func (p *fakePatcher) Patch(path string, _ []config.Placeholder) (manifest.Report, error) {
	p.calls++
	p.path = path
	if p.panics {
		panic("patch exploded")
	}
	return manifest.Report{Path: path, Removed: p.removed}, p.err
}

type fakeLauncher struct {
	err   error
	dir   string
	calls int
}

func (l *fakeLauncher) Launch(_ context.Context, dir string) (runner.Result, error) {
	l.calls++
	l.dir = dir
	if l.err != nil {
		return runner.Result{ExitCode: 1}, l.err
	}
	return runner.Result{Message: "installed"}, nil
}

type fakeWorkdirs struct {
	dir       string
	createErr error
	removeErr error
	removed   []string
}

func (w *fakeWorkdirs) Create() (string, error) {
	return w.dir, w.createErr
}

func (w *fakeWorkdirs) Remove(path string) error {
	if w.removeErr != nil {
		return w.removeErr
	}
	w.removed = append(w.removed, path)
	return nil
}
