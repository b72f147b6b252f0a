//go:build unit

package config

import (
	"errors"
	"testing"

	"github.com/lerenn/localized-cleaner/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRealManager_DefaultConfig(t *testing.T) {
	manager := NewManager(nil, "")

	cfg := manager.DefaultConfig()

	assert.Equal(t, ".", cfg.ProjectRoot)
	assert.Equal(t, "Base.lproj/Localizable.strings", cfg.ResourceFile)
	assert.Equal(t, []string{".swift"}, cfg.Extensions)
	assert.Equal(t, "=", cfg.Separator)
	assert.Equal(t, ".localized", cfg.Accessor)
	assert.True(t, cfg.TrimKeys)
	assert.Equal(t, DefaultConfigPath, manager.GetConfigPath())
}

func TestRealManager_DefaultConfigIsACopy(t *testing.T) {
	manager := NewManager(nil, "")

	cfg := manager.DefaultConfig()
	cfg.Extensions[0] = ".m"

	assert.Equal(t, []string{".swift"}, manager.DefaultConfig().Extensions)
	assert.Empty(t, manager.DefaultConfig().Exclude)
	assert.Empty(t, manager.DefaultConfig().IgnoreKeys)
}

func TestMustParseDefault_Invalid(t *testing.T) {
	assert.Panics(t, func() { mustParseDefault([]byte("extensions: {")) })
}

func TestRealManager_GetConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	manager := NewManager(mockFS, "/project/.lc.yaml")

	data := []byte(`project_root: ~/Code/App
extensions: [".swift", ".m"]
trim_keys: false
exclude: ["Pods/**"]
ignore_keys: ["debug.*"]
`)

	mockFS.EXPECT().Exists("/project/.lc.yaml").Return(true, nil)
	mockFS.EXPECT().ReadFile("/project/.lc.yaml").Return(data, nil)
	mockFS.EXPECT().ExpandPath("~/Code/App").Return("/home/user/Code/App", nil)

	cfg, err := manager.GetConfig()
	require.NoError(t, err)

	assert.Equal(t, "/home/user/Code/App", cfg.ProjectRoot)
	assert.Equal(t, []string{".swift", ".m"}, cfg.Extensions)
	assert.False(t, cfg.TrimKeys)
	assert.Equal(t, []string{"Pods/**"}, cfg.Exclude)
	assert.Equal(t, []string{"debug.*"}, cfg.IgnoreKeys)
	// Values missing from the file keep their defaults
	assert.Equal(t, "Base.lproj/Localizable.strings", cfg.ResourceFile)
	assert.Equal(t, "=", cfg.Separator)
	assert.Equal(t, ".localized", cfg.Accessor)
}

func TestRealManager_GetConfig_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	manager := NewManager(mockFS, ".lc.yaml")

	mockFS.EXPECT().Exists(".lc.yaml").Return(false, nil)

	_, err := manager.GetConfig()
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestRealManager_GetConfig_ParseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	manager := NewManager(mockFS, ".lc.yaml")

	mockFS.EXPECT().Exists(".lc.yaml").Return(true, nil)
	mockFS.EXPECT().ReadFile(".lc.yaml").Return([]byte("extensions: {not: [a list"), nil)

	_, err := manager.GetConfig()
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestRealManager_GetConfig_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	manager := NewManager(mockFS, ".lc.yaml")

	mockFS.EXPECT().Exists(".lc.yaml").Return(true, nil)
	mockFS.EXPECT().ReadFile(".lc.yaml").Return([]byte(`separator: ""`), nil)
	mockFS.EXPECT().ExpandPath(".").Return(".", nil)

	_, err := manager.GetConfig()
	assert.ErrorIs(t, err, ErrSeparatorEmpty)
}

func TestRealManager_GetConfigWithFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	manager := NewManager(mockFS, ".lc.yaml")

	mockFS.EXPECT().Exists(".lc.yaml").Return(false, nil)
	mockFS.EXPECT().ExpandPath(".").Return(".", nil)

	cfg, err := manager.GetConfigWithFallback()
	require.NoError(t, err)
	assert.Equal(t, manager.DefaultConfig(), cfg)
}

func TestRealManager_GetConfigWithFallback_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	manager := NewManager(mockFS, ".lc.yaml")

	readErr := errors.New("permission denied")
	mockFS.EXPECT().Exists(".lc.yaml").Return(true, nil)
	mockFS.EXPECT().ReadFile(".lc.yaml").Return(nil, readErr)

	_, err := manager.GetConfigWithFallback()
	assert.ErrorIs(t, err, readErr)
}
