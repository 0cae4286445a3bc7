//go:build !windows

package osinfo

// osCaption has no refinement to offer outside Windows; gopsutil's platform
// name is already the right one.
func osCaption() (string, error) {
	return "", nil
}
