//go:build !windows

package extract

import (
	"fmt"

	"github.com/conn-castle/nvtrim/internal/messages"
)

// RegistryLocator reads the 7-Zip install directory from the Windows
// registry. Elsewhere there is no registry and Locate always fails.
type RegistryLocator struct{}

// Locate reports ErrToolNotFound.
func (RegistryLocator) Locate() (string, error) {
	return "", fmt.Errorf("%w: %s", ErrToolNotFound, messages.ExtractToolUnsupported)
}
