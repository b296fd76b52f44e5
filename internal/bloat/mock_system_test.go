package bloat

import (
	"os"
)

// testSystem wraps RealSystem so tests can inject failures for single paths.
type testSystem struct {
	RealSystem

	RemoveAllFunc func(path string) error
	LstatFunc     func(name string) (os.FileInfo, error)
	removed       []string
}

func (s *testSystem) RemoveAll(path string) error {
	s.removed = append(s.removed, path)
	if s.RemoveAllFunc != nil {
		return s.RemoveAllFunc(path)
	}
	return s.RealSystem.RemoveAll(path)
}

func (s *testSystem) Lstat(name string) (os.FileInfo, error) {
	if s.LstatFunc != nil {
		return s.LstatFunc(name)
	}
	return s.RealSystem.Lstat(name)
}
