//go:build !windows

package files

// isReparsePoint is only meaningful on Windows; Lstat already reports symlinks elsewhere.
func isReparsePoint(string) (bool, error) {
	return false, nil
}
