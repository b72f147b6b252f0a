//go:build unit

package dependencies

import (
	"testing"

	"github.com/lerenn/localized-cleaner/pkg/config"
	"github.com/lerenn/localized-cleaner/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Logger)
	assert.Nil(t, deps.Config)
	assert.ErrorIs(t, deps.Validate(), ErrConfigMissing)
}

func TestWith(t *testing.T) {
	deps := New().
		WithConfig(config.NewManager(nil, "")).
		WithLogger(logger.NewNoopLogger())

	assert.NoError(t, deps.Validate())

	deps.WithFS(nil)
	assert.ErrorIs(t, deps.Validate(), ErrFSMissing)

	deps = New().WithConfig(config.NewManager(nil, "")).WithLogger(nil)
	assert.ErrorIs(t, deps.Validate(), ErrLoggerMissing)
}
