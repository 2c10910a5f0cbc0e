// ABOUTME: fitlog configuration management.
// ABOUTME: Handles data location, logging settings, and the storage factory function.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/fitlog/internal/logging"
	"github.com/harperreed/fitlog/internal/storage"
)

// Config stores fitlog configuration.
type Config struct {
	// DataDir is the root directory for data storage; workouts.db lives here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/fitlog.
	DataDir string `json:"data_dir,omitempty"`

	// LogFile enables rotating file logs. Empty logs to stderr.
	LogFile string `json:"log_file,omitempty"`

	// LogLevel is a logrus level name (debug, info, warn, error). Defaults to warn.
	LogLevel string `json:"log_level,omitempty"`

	// LogJSON switches log output to JSON.
	LogJSON bool `json:"log_json,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDBPath returns the database file path inside the data directory.
func (c *Config) GetDBPath() string {
	if c.DataDir == "" {
		return storage.DefaultDBPath()
	}
	return filepath.Join(c.GetDataDir(), storage.DBFileName)
}

// GetLogLevel returns the configured log level, defaulting to "warn".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "warn"
	}
	return c.LogLevel
}

// LoggingParams converts the logging settings for logging.Setup.
func (c *Config) LoggingParams() logging.Params {
	return logging.Params{
		LogFile: ExpandPath(c.LogFile),
		Level:   c.GetLogLevel(),
		JSON:    c.LogJSON,
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the workout store. A non-empty dbPath overrides the
// configured location.
func (c *Config) OpenStorage(dbPath string) (storage.Repository, error) {
	if dbPath == "" {
		dbPath = c.GetDBPath()
	}
	return storage.Open(ExpandPath(dbPath))
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitlog", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
