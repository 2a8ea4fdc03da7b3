// Package config loads the application configuration from the user's
// config directory. Missing files and unknown paths fall back to
// defaults so the app always starts.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// tokenEnvVar overrides the configured summarizer token. The token is
// never written back to disk by Save.
const tokenEnvVar = "DESKBOARD_SUMMARIZER_TOKEN"

// dataDirEnvVar overrides the configured data directory.
const dataDirEnvVar = "DESKBOARD_DATA_DIR"

// Config represents the application configuration
type Config struct {
	// DataDir holds the sqlite database and logs. Empty means
	// ~/.deskboard.
	DataDir string `yaml:"data_dir"`

	// NotesPageSize is the number of notes shown per page in each
	// notes panel.
	NotesPageSize int `yaml:"notes_page_size"`

	Summarizer SummarizerConfig `yaml:"summarizer"`
}

// SummarizerConfig points at an optional remote summarization
// endpoint. An empty endpoint disables remote summarization and the
// local fallback is used instead.
type SummarizerConfig struct {
	Endpoint string `yaml:"endpoint"`

	// Token is read from DESKBOARD_SUMMARIZER_TOKEN when set; the
	// yaml field exists for completeness but the env var wins.
	Token string `yaml:"token,omitempty"`
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := &Config{}
		config.applyDefaults()
		loadTokenEnv(config)
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := &Config{}
		config.applyDefaults()
		loadTokenEnv(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	loadTokenEnv(&config)

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	// Never persist the token, even when it arrived via the env var.
	copy := *c
	copy.Summarizer.Token = ""

	data, err := yaml.Marshal(&copy)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// DatabasePath returns the path of the sqlite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "deskboard.db")
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "deskboard", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "deskboard", "config.yaml"), nil
}

// loadTokenEnv overlays the summarizer token from the environment.
func loadTokenEnv(config *Config) {
	if token := os.Getenv(tokenEnvVar); token != "" {
		config.Summarizer.Token = token
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if dir := os.Getenv(dataDirEnvVar); dir != "" {
		c.DataDir = dir
	}
	if c.DataDir == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			c.DataDir = filepath.Join(homeDir, ".deskboard")
		}
	}
	if c.NotesPageSize <= 0 {
		c.NotesPageSize = 6
	}
}
