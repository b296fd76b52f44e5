//go:build windows

package extract

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows/registry"

	"github.com/conn-castle/nvtrim/internal/messages"
)

const (
	sevenZipKey   = `Software\7-Zip`
	sevenZipValue = "Path"
	sevenZipExe   = "7z.exe"
)

// RegistryLocator reads the 7-Zip install directory from HKLM\Software\7-Zip.
type RegistryLocator struct{}

// Locate returns <Path>\7z.exe from the 7-Zip registry key.
func (RegistryLocator) Locate() (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, sevenZipKey, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("%w: "+messages.ExtractToolRegistryFmt, ErrToolNotFound, err)
	}
	defer key.Close()

	dir, _, err := key.GetStringValue(sevenZipValue)
	if err != nil {
		return "", fmt.Errorf("%w: "+messages.ExtractToolRegistryFmt, ErrToolNotFound, err)
	}
	path := filepath.Join(dir, sevenZipExe)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: "+messages.ExtractToolMissingFmt, ErrToolNotFound, path)
	}
	return path, nil
}
