package workspace

import (
	"os"
	"path/filepath"

	"github.com/bashhack/devboot/internal/errors"
)

// DirPerm is the permission used for every directory devboot creates.
const DirPerm os.FileMode = 0o755

// FilePerm is the permission used for every file devboot writes.
const FilePerm os.FileMode = 0o644

// MakeFolders ensures each named folder exists under root, creating missing
// intermediate directories. Existing folders are left untouched, so calling
// it repeatedly is safe. Names may be nested ("docs/adr") or absolute.
func MakeFolders(root string, names ...string) error {
	for _, name := range names {
		if name == "" {
			continue
		}
		dir := name
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(root, name)
		}
		if err := os.MkdirAll(dir, DirPerm); err != nil {
			return errors.Wrapf(err, "failed to create folder %s", dir)
		}
	}
	return nil
}

// WriteFile replaces the contents of path with data, creating the parent
// directory first.
func WriteFile(path string, data []byte) error {
	if err := MakeFolders(filepath.Dir(path), "."); err != nil {
		return err
	}
	if err := writeFile(path, data); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
