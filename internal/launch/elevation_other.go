//go:build !windows

package launch

// needsElevation is always false; only Windows refuses to start a process
// over its requested execution level.
func needsElevation(error) bool {
	return false
}
