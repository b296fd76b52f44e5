package extract

import (
	"os"
	"os/exec"
)

// System abstracts the OS lookups the extractor performs before running 7-Zip.
type System interface {
	Stat(name string) (os.FileInfo, error)
	LookPath(file string) (string, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// LookPath searches PATH for an executable named file.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
