package config

import (
	"errors"
	"fmt"

	"github.com/lerenn/localized-cleaner/configs"
	"github.com/lerenn/localized-cleaner/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// DefaultConfigPath is the config file looked up when none is given.
const DefaultConfigPath = ".lc.yaml"

var defaultConfig = mustParseDefault(configs.DefaultConfigYAML)

func mustParseDefault(data []byte) Config {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		panic(fmt.Sprintf("invalid embedded default configuration: %v", err))
	}
	return config
}

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	// GetConfig loads the configuration, failing if the file is missing.
	GetConfig() (Config, error)
	// GetConfigWithFallback loads the configuration, using defaults if the file is missing.
	GetConfigWithFallback() (Config, error)
	// GetConfigPath returns the embedded config path.
	GetConfigPath() string
	// DefaultConfig returns the default configuration.
	DefaultConfig() Config
}

type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance reading configPath through fsys.
func NewManager(fsys fs.FS, configPath string) Manager {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	return &realManager{
		fs:         fsys,
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
// Values absent from the file keep their defaults.
func (c *realManager) GetConfig() (Config, error) {
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, c.configPath)
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	config := c.DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	return c.finalize(config)
}

// GetConfigWithFallback loads the configuration, falling back to defaults when
// the file does not exist. A file that exists but is invalid is still an error.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return Config{}, err
	}
	return c.finalize(c.DefaultConfig())
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration: an Xcode project rooted at
// the working directory.
func (c *realManager) DefaultConfig() Config {
	config := defaultConfig
	config.Extensions = append([]string(nil), defaultConfig.Extensions...)
	config.Exclude = append([]string(nil), defaultConfig.Exclude...)
	config.IgnoreKeys = append([]string(nil), defaultConfig.IgnoreKeys...)
	return config
}

// finalize expands tildes and validates the configuration.
func (c *realManager) finalize(config Config) (Config, error) {
	root, err := c.fs.ExpandPath(config.ProjectRoot)
	if err != nil {
		return Config{}, fmt.Errorf("failed to expand project root: %w", err)
	}
	config.ProjectRoot = root

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}
