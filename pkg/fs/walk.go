package fs

import (
	iofs "io/fs"
	"path/filepath"
)

// WalkDir walks the tree rooted at root, calling fn for each file or directory.
// Entries are visited in lexical order, so two walks of the same tree agree.
// A symlinked root is followed; paths passed to fn stay under root as given.
// Symlinks below the root are reported but not followed.
func (f *realFS) WalkDir(root string, fn iofs.WalkDirFunc) error {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil || resolved == filepath.Clean(root) {
		return filepath.WalkDir(root, fn)
	}

	return filepath.WalkDir(resolved, func(path string, d iofs.DirEntry, err error) error {
		if path == resolved {
			return fn(root, d, err)
		}
		rel, relErr := filepath.Rel(resolved, path)
		if relErr != nil {
			return relErr
		}
		return fn(filepath.Join(root, rel), d, err)
	})
}
