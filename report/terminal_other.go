//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package report

// IsTerminal always reports false, output defaults to a machine-readable format.
func IsTerminal(_ uintptr) bool {
	return false
}
