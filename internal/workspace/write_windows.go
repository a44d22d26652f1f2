//go:build windows

package workspace

import "os"

// writeFile falls back to a plain overwrite; renameio does not support Windows.
func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, FilePerm)
}
