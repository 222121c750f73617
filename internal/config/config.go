// Package config handles reading and writing .costcorrect/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for .costcorrect/config.yaml.
type Config struct {
	Version int           `yaml:"version"`
	Service ServiceConfig `yaml:"service"`
	Export  ExportConfig  `yaml:"export"`
	Serve   ServeConfig   `yaml:"serve"`
}

// ServiceConfig points the client at the analysis service.
type ServiceConfig struct {
	BaseURL string `yaml:"base_url"`
	// Tier overrides the remotely resolved subscription tier when set.
	// Useful against the bundled stub service, which has no identity provider.
	Tier string `yaml:"tier"`
}

// ExportConfig controls where printable documents are written.
type ExportConfig struct {
	Dir string `yaml:"dir"` // empty means current working directory
}

// ServeConfig configures the bundled stub analysis service.
type ServeConfig struct {
	Addr        string  `yaml:"addr"`
	WallHeightM float64 `yaml:"wall_height_m"`
}

// configFileName is the path relative to the base directory.
const configDir = ".costcorrect"
const configFile = "config.yaml"

// Dir returns the .costcorrect directory under the user's home directory.
// Falls back to the current directory when the home dir cannot be resolved.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configDir
	}
	return filepath.Join(home, configDir)
}

// ReadConfig reads config.yaml from the given base directory.
// dir is the directory containing .costcorrect/ (usually the home dir).
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configDir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// WriteConfig writes cfg to .costcorrect/config.yaml in the given directory.
// Creates the .costcorrect/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Service: ServiceConfig{
			BaseURL: "http://localhost:8000",
		},
		Serve: ServeConfig{
			Addr:        ":8000",
			WallHeightM: 2.7,
		},
	}
}

// APIToken returns the bearer token for the analysis service, if any.
// Loads a .env file from the working directory first so local setups
// match the hosted deployment's environment handling.
func APIToken() string {
	_ = godotenv.Load()
	return os.Getenv("COSTCORRECT_API_TOKEN")
}
