// Package discovery enumerates the source files of a project.
package discovery

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/lerenn/localized-cleaner/pkg/fs"
)

// Params contains parameters for Discover.
type Params struct {
	Root string
	// Extensions to keep, with their leading dot. Matching ignores case.
	Extensions []string
	// Exclude lists glob patterns matched against slash-separated paths
	// relative to Root. A matching directory is not descended.
	Exclude []string
}

// Discover returns the sorted paths of the source files under params.Root.
// Hidden files and directories are skipped. When the root cannot be walked no
// path is returned; entries below it that fail are skipped and reported in
// the error next to the files that were found.
func Discover(fsys fs.FS, params Params) ([]string, error) {
	excludes, err := compile(params.Exclude)
	if err != nil {
		return nil, err
	}

	isDir, err := fsys.IsDir(params.Root)
	if err != nil {
		if fsys.IsNotExist(err) {
			return nil, fmt.Errorf("%w %s: %w: %w", ErrDiscovery, params.Root, ErrRootNotFound, err)
		}
		return nil, fmt.Errorf("%w %s: %w", ErrDiscovery, params.Root, err)
	}
	if !isDir {
		return nil, fmt.Errorf("%w %s: %w", ErrDiscovery, params.Root, ErrNotDirectory)
	}

	extensions := make(map[string]bool, len(params.Extensions))
	for _, ext := range params.Extensions {
		extensions[strings.ToLower(ext)] = true
	}

	var files []string
	var skipped []error
	err = fsys.WalkDir(params.Root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			if path == params.Root {
				return err
			}
			// A failing directory is reported a second time by WalkDir
			// after its entry, so returning nil skips its content only.
			skipped = append(skipped, err)
			return nil
		}
		if path == params.Root {
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") || isExcluded(excludes, params.Root, path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() && extensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDiscovery, params.Root, err)
	}

	sort.Strings(files)
	if len(skipped) > 0 {
		return files, fmt.Errorf("%w %s: %w: %w", ErrDiscovery, params.Root, ErrPartialWalk, errors.Join(skipped...))
	}
	return files, nil
}

func compile(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func isExcluded(excludes []glob.Glob, root, path string) bool {
	if len(excludes) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, g := range excludes {
		if g.Match(rel) {
			return true
		}
	}
	return false
}
