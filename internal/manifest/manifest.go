// Package manifest removes references to deleted files from the installer's setup.cfg.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/beevik/etree"

	"github.com/conn-castle/nvtrim/internal/config"
	"github.com/conn-castle/nvtrim/internal/messages"
)

const (
	manifestTag = "manifest"
	fileTag     = "file"
	nameAttr    = "name"
)

// ErrNoRoot is returned for a manifest without a root element.
var ErrNoRoot = errors.New(messages.ManifestNoRoot)

// Removal records one <file> node dropped from a <manifest> node.
type Removal struct {
	// Manifest is the index of the parent among the root's <manifest> children.
	Manifest int
	Name     string
	// Placeholder is the first configured placeholder found in Name.
	Placeholder config.Placeholder
}

// Report describes a Patch pass.
type Report struct {
	Path    string
	Removed []Removal
	Before  []byte
	After   []byte
}

// Diff returns a unified diff of the manifest before and after patching,
// or "" when nothing changed.
func (r Report) Diff() string {
	return udiff.Unified(r.Path, r.Path, string(r.Before), string(r.After))
}

// Patcher rewrites installer manifests.
type Patcher struct {
	System System
	Out    io.Writer
}

// New returns a Patcher on the OS filesystem that prints progress to out.
func New(out io.Writer) *Patcher {
	return &Patcher{System: RealSystem{}, Out: out}
}

// Patch parses the XML manifest at path, removes every <file> under a
// top-level <manifest> whose name attribute contains any placeholder token,
// and writes the document back to path. It always rewrites the file, and a
// second pass over a patched manifest removes nothing.
func (p *Patcher) Patch(path string, placeholders []config.Placeholder) (Report, error) {
	report := Report{Path: path}
	before, err := p.System.ReadFile(path)
	if err != nil {
		return report, fmt.Errorf(messages.ManifestReadFmt, path, err)
	}
	report.Before = before

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(before); err != nil {
		return report, fmt.Errorf(messages.ManifestReadFmt, path, err)
	}
	root := doc.Root()
	if root == nil {
		return report, fmt.Errorf(messages.ManifestReadFmt, path, ErrNoRoot)
	}

	for i, manifest := range root.SelectElements(manifestTag) {
		for _, file := range manifest.SelectElements(fileTag) {
			name := file.SelectAttrValue(nameAttr, "")
			match, ok := firstMatch(name, placeholders)
			if !ok {
				continue
			}
			p.printf(messages.ManifestRemovingRefFmt, match.DisplayName())
			removeWithIndent(manifest, file)
			report.Removed = append(report.Removed, Removal{Manifest: i, Name: name, Placeholder: match})
		}
	}

	after, err := doc.WriteToBytes()
	if err != nil {
		return report, fmt.Errorf(messages.ManifestWriteFmt, path, err)
	}
	if err := p.System.WriteFile(path, after, 0o644); err != nil {
		return report, fmt.Errorf(messages.ManifestWriteFmt, path, err)
	}
	report.After = after
	return report, nil
}

// firstMatch returns the first placeholder, in configured order, with a form
// that appears in name. Only this one is reported even if several match.
func firstMatch(name string, placeholders []config.Placeholder) (config.Placeholder, bool) {
	if name == "" {
		return config.Placeholder{}, false
	}
	for _, p := range placeholders {
		for _, form := range p.Forms() {
			if strings.Contains(name, form) {
				return p, true
			}
		}
	}
	return config.Placeholder{}, false
}

// removeWithIndent drops child and the whitespace run before it so the
// rewritten file does not keep an empty line per removed node.
func removeWithIndent(parent *etree.Element, child *etree.Element) {
	idx := child.Index()
	parent.RemoveChildAt(idx)
	if idx == 0 {
		return
	}
	if text, ok := parent.Child[idx-1].(*etree.CharData); ok && text.IsWhitespace() {
		parent.RemoveChildAt(idx - 1)
	}
}

func (p *Patcher) printf(format string, args ...any) {
	if p.Out == nil {
		return
	}
	_, _ = fmt.Fprintf(p.Out, format, args...)
}

// System abstracts manifest file access.
type System interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile writes data to the named file, truncating it first.
func (RealSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}
