// Package report classifies keys as used or unused and prints the result.
package report

import (
	"fmt"
	"sort"

	"github.com/gobwas/glob"
	"github.com/lerenn/localized-cleaner/pkg/resource"
)

// Report is the outcome of a scan.
type Report struct {
	Total   int
	Used    int
	Ignored []string
	Unused  []string
}

// UnusedCount returns the number of unused keys.
func (r Report) UnusedCount() int {
	return len(r.Unused)
}

// Build partitions the keys of table. Keys with a zero count are unused unless
// they match one of the ignore patterns. Key lists are sorted.
func Build(table *resource.Table, ignore []string) (Report, error) {
	globs := make([]glob.Glob, 0, len(ignore))
	for _, pattern := range ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			return Report{}, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
		}
		globs = append(globs, g)
	}

	r := Report{Total: table.Len(), Ignored: []string{}, Unused: []string{}}
	for _, key := range table.Keys() {
		switch {
		case table.Count(key) > 0:
			r.Used++
		case matchesAny(globs, key):
			r.Ignored = append(r.Ignored, key)
		default:
			r.Unused = append(r.Unused, key)
		}
	}

	sort.Strings(r.Ignored)
	sort.Strings(r.Unused)
	return r, nil
}

func matchesAny(globs []glob.Glob, key string) bool {
	for _, g := range globs {
		if g.Match(key) {
			return true
		}
	}
	return false
}
