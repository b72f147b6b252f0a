package resource

import (
	"fmt"

	"github.com/lerenn/localized-cleaner/pkg/fs"
	"github.com/lerenn/localized-cleaner/pkg/text"
)

// Load reads the resource file at path and returns its keys, all at zero.
// On failure the returned table is empty but usable.
func Load(fsys fs.FS, path string, opts ParseOptions) (*Table, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return NewTable(), fmt.Errorf("%w %s: %w", ErrResourceRead, path, err)
	}

	content, _, err := text.Decode(data)
	if err != nil {
		return NewTable(), fmt.Errorf("%w %s: %w", ErrResourceRead, path, err)
	}

	return Parse(content, opts), nil
}
