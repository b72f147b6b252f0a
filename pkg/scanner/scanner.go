// Package scanner counts, for every localization key, the source files that mention it.
package scanner

import (
	"fmt"
	"strings"

	"github.com/lerenn/localized-cleaner/pkg/fs"
	"github.com/lerenn/localized-cleaner/pkg/logger"
	"github.com/lerenn/localized-cleaner/pkg/resource"
	"github.com/lerenn/localized-cleaner/pkg/text"
)

// FileError records a source file that could not be scanned.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrFileRead, e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is.
func (e *FileError) Unwrap() []error {
	return []error{ErrFileRead, e.Err}
}

// Params contains parameters for Scan.
type Params struct {
	Files    []string
	Accessor string
	Logger   logger.Logger
}

// Result summarises a scan.
type Result struct {
	// Scanned is the number of files read successfully.
	Scanned int
	// Failures lists the files that were skipped.
	Failures []*FileError
}

// Scan reads every file and increments, once per file, the count of each key
// of table found in the normalized text. Matching is plain substring
// containment: a key inside a longer identifier counts as used.
func Scan(fsys fs.FS, table *resource.Table, params Params) Result {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	keys := table.Keys()
	var result Result
	for _, path := range params.Files {
		content, err := readText(fsys, path)
		if err != nil {
			result.Failures = append(result.Failures, &FileError{Path: path, Err: err})
			continue
		}

		normalized := Normalize(content, params.Accessor)
		matched := 0
		for _, key := range keys {
			if strings.Contains(normalized, key) {
				table.Increment(key)
				matched++
			}
		}
		result.Scanned++
		log.Logf("%s: %d key(s)", path, matched)
	}

	return result
}

func readText(fsys fs.FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", err
	}
	content, _, err := text.Decode(data)
	return content, err
}
