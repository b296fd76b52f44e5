//go:build windows

package launch

import (
	"errors"

	"golang.org/x/sys/windows"
)

// needsElevation matches ERROR_ELEVATION_REQUIRED, which CreateProcess
// returns for installers whose manifest asks for administrator rights.
func needsElevation(err error) bool {
	return errors.Is(err, windows.ERROR_ELEVATION_REQUIRED)
}
