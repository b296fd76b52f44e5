package extract

import (
	"errors"
	"fmt"

	"github.com/conn-castle/nvtrim/internal/config"
	"github.com/conn-castle/nvtrim/internal/messages"
)

// ErrToolNotFound is returned when no 7-Zip executable can be located.
var ErrToolNotFound = errors.New(messages.ExtractToolNotFound)

// ToolLocator finds the 7-Zip executable.
type ToolLocator interface {
	Locate() (string, error)
}

// StaticLocator returns a fixed path after checking that it exists.
type StaticLocator struct {
	Path   string
	System System
}

// Locate returns the configured path.
func (l StaticLocator) Locate() (string, error) {
	sys := l.System
	if sys == nil {
		sys = RealSystem{}
	}
	if _, err := sys.Stat(l.Path); err != nil {
		return "", fmt.Errorf("%w: "+messages.ExtractToolMissingFmt, ErrToolNotFound, l.Path)
	}
	return l.Path, nil
}

// PathLookupLocator resolves a binary name such as 7z or 7zz on PATH.
type PathLookupLocator struct {
	Name   string
	System System
}

// Locate searches PATH for the configured name.
func (l PathLookupLocator) Locate() (string, error) {
	sys := l.System
	if sys == nil {
		sys = RealSystem{}
	}
	path, err := sys.LookPath(l.Name)
	if err != nil {
		return "", fmt.Errorf("%w: "+messages.ExtractToolLookupFmt, ErrToolNotFound, l.Name, err)
	}
	return path, nil
}

// NewLocator picks a locator from config: an explicit path, then a PATH
// lookup, and otherwise the 7-Zip registry entry.
func NewLocator(cfg config.ExtractorConfig) ToolLocator {
	switch {
	case cfg.Path != "":
		return StaticLocator{Path: cfg.Path}
	case cfg.Lookup != "":
		return PathLookupLocator{Name: cfg.Lookup}
	default:
		return RegistryLocator{}
	}
}
