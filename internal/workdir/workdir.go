// Package workdir manages the per-run extraction directory.
package workdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/conn-castle/nvtrim/internal/messages"
)

var newID = func() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Manager creates and removes working directories under TempRoot/AppName.
type Manager struct {
	TempRoot string
	AppName  string
}

// NewManager returns a Manager rooted at the system temp directory.
func NewManager(appName string) Manager {
	return Manager{TempRoot: os.TempDir(), AppName: appName}
}

// Base returns the directory that holds every run's working directory.
func (m Manager) Base() string {
	return filepath.Join(m.TempRoot, m.AppName)
}

// Create makes a fresh, uniquely named working directory and returns its path.
func (m Manager) Create() (string, error) {
	if m.TempRoot == "" {
		return "", errors.New(messages.WorkdirRootEmpty)
	}
	id, err := newID()
	if err != nil {
		return "", fmt.Errorf(messages.WorkdirIDFailed, err)
	}
	path := filepath.Join(m.Base(), id)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf(messages.WorkdirCreateFmt, path, err)
	}
	return path, nil
}

// Remove deletes a working directory created by this Manager.
// Paths outside Base are refused.
func (m Manager) Remove(path string) error {
	base := filepath.Clean(m.Base())
	clean := filepath.Clean(path)
	rel, err := filepath.Rel(base, clean)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf(messages.WorkdirNotOwnedFmt, path, base)
	}
	if err := os.RemoveAll(clean); err != nil {
		return fmt.Errorf(messages.WorkdirRemoveFmt, path, err)
	}
	return nil
}
