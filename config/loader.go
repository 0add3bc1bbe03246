package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "reservemate.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/reservemate"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"

	// EnvDataFile overrides storage.data_file
	EnvDataFile = "RESERVEMATE_DATA_FILE"
	// EnvLogLevel overrides log.level
	EnvLogLevel = "RESERVEMATE_LOG_LEVEL"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *slog.Logger

	// configFile, when set, replaces user and project discovery
	configFile string
	getenv     func(string) string
	getwd      func() (string, error)
	homeDir    func() (string, error)
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:  logger,
		getenv:  os.Getenv,
		getwd:   os.Getwd,
		homeDir: os.UserHomeDir,
	}
}

// WithConfigFile makes Load read path instead of searching for config files.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/reservemate/config.yaml)
// 3. Project config (reservemate.yaml in current or parent directories)
// 4. Environment variables
//
// An explicit config file replaces layers 2 and 3 and must exist.
func (l *Loader) Load() (*Config, error) {
	// Start with defaults
	config := DefaultConfig()

	if l.configFile != "" {
		fileConfig, err := LoadFromFile(l.configFile)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded config file", slog.String("path", l.configFile))
		config.Merge(resolveDataFile(fileConfig, l.configFile))
	} else {
		l.loadDiscovered(config)
	}

	l.applyEnv(config)

	// Validate final config
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (l *Loader) loadDiscovered(config *Config) {
	// Load user config
	userConfigPath := l.userConfigPath()
	if userConfigPath != "" {
		if userConfig, err := LoadFromFile(userConfigPath); err == nil {
			l.logger.Debug("Loaded user config", slog.String("path", userConfigPath))
			config.Merge(userConfig)
		} else if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("Failed to load user config", slog.String("path", userConfigPath), slog.String("error", err.Error()))
		}
	}

	// Load project config
	projectConfigPath := l.findProjectConfig()
	if projectConfigPath == "" {
		l.logger.Debug("No project config found")
		return
	}
	projectConfig, err := LoadFromFile(projectConfigPath)
	if err != nil {
		l.logger.Warn("Failed to load project config", slog.String("path", projectConfigPath), slog.String("error", err.Error()))
		return
	}
	l.logger.Debug("Loaded project config", slog.String("path", projectConfigPath))
	config.Merge(resolveDataFile(projectConfig, projectConfigPath))
}

// applyEnv applies environment variable overrides.
func (l *Loader) applyEnv(config *Config) {
	if v := l.getenv(EnvDataFile); v != "" {
		config.Storage.DataFile = v
		l.logger.Debug("Data file from environment", slog.String("path", v))
	}
	if v := l.getenv(EnvLogLevel); v != "" {
		config.Log.Level = v
	}
}

// EnsureUserConfig creates the user config file with defaults if it doesn't exist
func (l *Loader) EnsureUserConfig() error {
	userConfigPath := l.userConfigPath()

	// Check if it already exists
	if _, err := os.Stat(userConfigPath); err == nil {
		return nil // Already exists
	}

	// Create default config
	config := DefaultConfig()
	if err := config.SaveToFile(userConfigPath); err != nil {
		return err
	}

	l.logger.Info("Created default user config", slog.String("path", userConfigPath))
	return nil
}

// userConfigPath returns the path to the user config file
func (l *Loader) userConfigPath() string {
	home, err := l.homeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findProjectConfig searches for reservemate.yaml in current and parent directories
func (l *Loader) findProjectConfig() string {
	cwd, err := l.getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	return ""
}

// resolveDataFile makes a relative data file in a config file relative to
// that file's directory, so a project config works from any subdirectory.
func resolveDataFile(config *Config, configPath string) *Config {
	if config.Storage.DataFile != "" && !filepath.IsAbs(config.Storage.DataFile) {
		config.Storage.DataFile = filepath.Join(filepath.Dir(configPath), config.Storage.DataFile)
	}
	return config
}
