//go:build unit

package report

import (
	"testing"

	"github.com/lerenn/localized-cleaner/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(counts map[string]int, order ...string) *resource.Table {
	t := resource.NewTable()
	for _, key := range order {
		t.Add(key)
		for i := 0; i < counts[key]; i++ {
			t.Increment(key)
		}
	}
	return t
}

func TestBuild(t *testing.T) {
	tbl := table(map[string]int{"GREETING": 1, "TITLE": 3}, "ZULU", "GREETING", "FAREWELL", "TITLE")

	r, err := Build(tbl, nil)

	require.NoError(t, err)
	assert.Equal(t, 4, r.Total)
	assert.Equal(t, 2, r.Used)
	assert.Equal(t, []string{"FAREWELL", "ZULU"}, r.Unused)
	assert.Equal(t, 2, r.UnusedCount())
	assert.Empty(t, r.Ignored)
}

func TestBuild_IgnorePatterns(t *testing.T) {
	tbl := table(map[string]int{"debug.used": 1}, "debug.menu", "debug.used", "settings.title", "legacy_1")

	r, err := Build(tbl, []string{"debug.*", "legacy_?"})

	require.NoError(t, err)
	assert.Equal(t, []string{"debug.menu", "legacy_1"}, r.Ignored)
	assert.Equal(t, []string{"settings.title"}, r.Unused)
	assert.Equal(t, 1, r.Used)
}

func TestBuild_EmptyTable(t *testing.T) {
	r, err := Build(resource.NewTable(), nil)

	require.NoError(t, err)
	assert.Zero(t, r.Total)
	assert.Zero(t, r.UnusedCount())
	assert.NotNil(t, r.Unused)
}

func TestBuild_InvalidPattern(t *testing.T) {
	_, err := Build(resource.NewTable(), []string{"[a"})

	assert.ErrorIs(t, err, ErrInvalidPattern)
}
