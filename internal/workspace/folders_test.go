package workspace

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeFolders(t *testing.T) {
	tests := map[string]struct {
		names    []string
		expected []string
	}{
		"single folder": {
			names:    []string{"src"},
			expected: []string{"src"},
		},
		"multiple folders": {
			names:    []string{"src", "docs", "scripts"},
			expected: []string{"src", "docs", "scripts"},
		},
		"nested folder creates parents": {
			names:    []string{"docs/adr/2024"},
			expected: []string{"docs", "docs/adr", "docs/adr/2024"},
		},
		"empty names are skipped": {
			names:    []string{"", "data"},
			expected: []string{"data"},
		},
		"no names": {
			names: nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()

			require.NoError(t, MakeFolders(root, tc.names...))

			for _, dir := range tc.expected {
				info, err := os.Stat(filepath.Join(root, filepath.FromSlash(dir)))
				require.NoError(t, err)
				assert.True(t, info.IsDir(), "%s should be a directory", dir)
			}
		})
	}
}

func TestMakeFoldersIsIdempotent(t *testing.T) {
	root := t.TempDir()
	names := []string{"src", "docs/notes"}

	require.NoError(t, MakeFolders(root, names...))

	marker := filepath.Join(root, "docs", "notes", "keep.txt")
	require.NoError(t, os.WriteFile(marker, []byte("x"), 0o644))

	before := snapshot(t, root)
	require.NoError(t, MakeFolders(root, names...))
	after := snapshot(t, root)

	assert.Equal(t, before, after)
	assert.FileExists(t, marker)
}

func TestMakeFoldersAbsoluteName(t *testing.T) {
	root := t.TempDir()
	abs := filepath.Join(t.TempDir(), "elsewhere")

	require.NoError(t, MakeFolders(root, abs))
	assert.DirExists(t, abs)
}

func TestMakeFoldersPermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	root := t.TempDir()
	require.NoError(t, os.Chmod(root, 0o500))
	t.Cleanup(func() { _ = os.Chmod(root, 0o755) })

	err := MakeFolders(root, "blocked")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestMakeFoldersFileInTheWay(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "src"), []byte("x"), 0o644))

	err := MakeFolders(root, "src")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create folder")
}

func snapshot(t *testing.T, root string) []string {
	t.Helper()

	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		paths = append(paths, rel)
		return nil
	})
	require.NoError(t, err)
	return paths
}
