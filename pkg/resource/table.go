// Package resource loads localization keys from a key/value resource file
// and rewrites the file without the keys nobody uses.
package resource

// Table maps each localization key to the number of source files using it.
// Keys are kept in the order they were first seen in the resource file.
type Table struct {
	keys   []string
	counts map[string]int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Add registers key with a zero count. Adding a key twice resets its count.
func (t *Table) Add(key string) {
	if _, ok := t.counts[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.counts[key] = 0
}

// Increment adds one use to key. Unknown keys are ignored.
func (t *Table) Increment(key string) {
	if _, ok := t.counts[key]; ok {
		t.counts[key]++
	}
}

// Count returns the number of uses recorded for key.
func (t *Table) Count(key string) int {
	return t.counts[key]
}

// Keys returns the keys in first-seen order.
func (t *Table) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.keys)
}
