package resource

import (
	"fmt"
	"strings"

	"github.com/lerenn/localized-cleaner/pkg/fs"
	"github.com/lerenn/localized-cleaner/pkg/text"
)

// RemoveParams contains parameters for Remove.
type RemoveParams struct {
	Path    string
	Unused  []string
	Options ParseOptions
	// DryRun computes the removed lines without touching the file.
	DryRun bool
}

// RemoveResult describes what Remove dropped.
type RemoveResult struct {
	// Lines are the removed lines, in file order.
	Lines []string
	// Written is true when the file was rewritten.
	Written bool
	// Encoding is the encoding the file was read, and written back, in.
	Encoding text.Encoding
}

// Remove rewrites the resource file without the lines whose key is unused.
// Every other line, line ending and the file encoding are kept as they were.
func Remove(fsys fs.FS, params RemoveParams) (RemoveResult, error) {
	if len(params.Unused) == 0 {
		return RemoveResult{}, nil
	}

	if !params.DryRun {
		unlock, err := fsys.FileLock(params.Path)
		if err != nil {
			return RemoveResult{}, fmt.Errorf("%w %s: %w", ErrResourceWrite, params.Path, err)
		}
		defer unlock()
	}

	data, err := fsys.ReadFile(params.Path)
	if err != nil {
		return RemoveResult{}, fmt.Errorf("%w %s: %w", ErrResourceRead, params.Path, err)
	}
	content, enc, err := text.Decode(data)
	if err != nil {
		return RemoveResult{}, fmt.Errorf("%w %s: %w", ErrResourceRead, params.Path, err)
	}

	kept, removed := filterLines(content, params.Unused, params.Options)
	result := RemoveResult{Lines: removed, Encoding: enc}
	if len(removed) == 0 || params.DryRun {
		return result, nil
	}

	out, err := text.Encode(kept, enc)
	if err != nil {
		return result, fmt.Errorf("%w %s: %w", ErrResourceWrite, params.Path, err)
	}
	perm, err := fsys.FileMode(params.Path)
	if err != nil {
		return result, fmt.Errorf("%w %s: %w", ErrResourceWrite, params.Path, err)
	}
	if err := fsys.WriteFileAtomic(params.Path, out, perm); err != nil {
		return result, fmt.Errorf("%w %s: %w", ErrResourceWrite, params.Path, err)
	}

	result.Written = true
	return result, nil
}

// filterLines splits content on "\n" and drops lines keyed by an unused key.
func filterLines(content string, unused []string, opts ParseOptions) (string, []string) {
	drop := make(map[string]bool, len(unused))
	for _, key := range unused {
		drop[key] = true
	}

	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))
	var removed []string
	for _, line := range lines {
		if key, ok := ParseKey(line, opts); ok && drop[key] {
			removed = append(removed, strings.TrimSuffix(line, "\r"))
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n"), removed
}
