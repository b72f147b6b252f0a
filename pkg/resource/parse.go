package resource

import "strings"

// ParseOptions controls how a resource line is split into a key.
type ParseOptions struct {
	// Separator splits key from value, only its first occurrence counts.
	Separator string
	// TrimKeys trims whitespace around the key.
	TrimKeys bool
}

// ParseKey extracts the key of a resource line. It returns false for lines
// without separator and for empty keys.
func ParseKey(line string, opts ParseOptions) (string, bool) {
	key, _, found := strings.Cut(strings.TrimSuffix(line, "\r"), opts.Separator)
	if !found {
		return "", false
	}
	if opts.TrimKeys {
		key = strings.TrimSpace(key)
	}
	// An empty key is contained in any text and would always count as used.
	if key == "" {
		return "", false
	}
	return key, true
}

// Parse builds a table from the content of a resource file.
// Comments are not special-cased: a comment containing the separator yields a key.
func Parse(content string, opts ParseOptions) *Table {
	table := NewTable()
	for _, line := range strings.Split(content, "\n") {
		if key, ok := ParseKey(line, opts); ok {
			table.Add(key)
		}
	}
	return table
}
