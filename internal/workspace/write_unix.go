//go:build !windows

package workspace

import (
	"github.com/google/renameio/v2"
)

// writeFile writes through a pending file that is fsynced and renamed over
// path, so readers never observe a partially written document.
func writeFile(path string, data []byte) error {
	return renameio.WriteFile(path, data, FilePerm, renameio.WithExistingPermissions())
}
