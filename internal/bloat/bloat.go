// Package bloat prunes an extracted driver package down to its allow-list.
package bloat

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/conn-castle/nvtrim/internal/config"
	"github.com/conn-castle/nvtrim/internal/messages"
)

// Kind distinguishes folders from files; each is checked against its own list.
type Kind int

// Entry kinds.
const (
	KindFile Kind = iota
	KindFolder
)

func (k Kind) String() string {
	if k == KindFolder {
		return "folder"
	}
	return "file"
}

// Entry is one top-level item of the working directory.
type Entry struct {
	Name string
	Kind Kind
}

// Failure is an entry that could not be removed.
type Failure struct {
	Entry Entry
	Err   error
}

// Report lists what a Remove pass deleted, kept, and failed on, in name order.
type Report struct {
	Deleted  []Entry
	Kept     []Entry
	Failures []Failure
}

// Remover deletes top-level entries missing from the allow-list.
type Remover struct {
	System System
	Out    io.Writer
	Logger *log.Logger
}

// New returns a Remover on the OS filesystem that prints progress to out.
func New(out io.Writer, logger *log.Logger) *Remover {
	return &Remover{System: RealSystem{}, Out: out, Logger: logger}
}

// Remove deletes every immediate child of dir whose name is not allow-listed
// for its kind. Directories are removed recursively. A failure on one entry
// is recorded and logged and the scan moves on; only failing to list dir
// itself is returned as an error.
func (r *Remover) Remove(dir string, allow config.AllowList) (Report, error) {
	var report Report
	entries, err := r.System.ReadDir(dir)
	if err != nil {
		return report, fmt.Errorf(messages.BloatReadDirFmt, dir, err)
	}

	for _, item := range entries {
		path := filepath.Join(dir, item.Name())
		entry := Entry{Name: item.Name(), Kind: r.kindOf(path, item)}

		keep := allow.KeepsFile(entry.Name)
		if entry.Kind == KindFolder {
			keep = allow.KeepsFolder(entry.Name)
		}
		if keep {
			report.Kept = append(report.Kept, entry)
			continue
		}

		r.announce(entry)
		if err := r.delete(path); err != nil {
			report.Failures = append(report.Failures, Failure{Entry: entry, Err: err})
			r.logger().Warn(messages.BloatItemFailedLog, "item", entry.Name, "kind", entry.Kind, "err", err)
			continue
		}
		report.Deleted = append(report.Deleted, entry)
	}
	return report, nil
}

// kindOf follows symlinks so a link to a directory is judged as a folder.
// When the target cannot be resolved the entry is treated as a file.
func (r *Remover) kindOf(path string, item os.DirEntry) Kind {
	if item.IsDir() {
		return KindFolder
	}
	if item.Type()&os.ModeSymlink == 0 {
		return KindFile
	}
	info, err := r.System.Stat(path)
	if err == nil && info.IsDir() {
		return KindFolder
	}
	return KindFile
}

// delete removes path, reporting an entry that vanished mid-scan as an error
// rather than a silent success.
func (r *Remover) delete(path string) error {
	if _, err := r.System.Lstat(path); err != nil {
		return fmt.Errorf(messages.BloatItemFailedFmt, filepath.Base(path), err)
	}
	if err := r.System.RemoveAll(path); err != nil {
		return fmt.Errorf(messages.BloatItemFailedFmt, filepath.Base(path), err)
	}
	return nil
}

func (r *Remover) announce(entry Entry) {
	if r.Out == nil {
		return
	}
	format := messages.BloatDeletingFileFmt
	if entry.Kind == KindFolder {
		format = messages.BloatDeletingFolderFmt
	}
	_, _ = fmt.Fprintf(r.Out, format, entry.Name)
}

func (r *Remover) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}
