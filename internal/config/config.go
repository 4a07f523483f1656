// Package config loads the application configuration from a TOML
// file, with defaults that run the server out of the repository
// checkout unchanged.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full application configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Data    DataConfig    `toml:"data"`
	Storage StorageConfig `toml:"storage"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr        string   `toml:"addr"`         // Listen address, e.g. ":8080"
	CORSOrigins []string `toml:"cors_origins"` // Allowed browser origins
}

// DataConfig points at the bundled dataset and assets.
type DataConfig struct {
	DatasetPath string `toml:"dataset_path"` // Bundled gods/items JSON
	IconDir     string `toml:"icon_dir"`     // Icon asset root ("" disables icons)
	PageSize    int    `toml:"page_size"`    // Listing cap when no query is active
}

// StorageConfig holds the loadout database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"http://localhost:*"},
		},
		Data: DataConfig{
			DatasetPath: "./data/dataset.json",
			PageSize:    20,
		},
		Storage: StorageConfig{
			DBPath: "./mastery.db",
		},
	}
}

// Load reads a TOML config file over the defaults. A missing file is
// not an error; the defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Data.PageSize <= 0 {
		cfg.Data.PageSize = Default().Data.PageSize
	}
	return cfg, nil
}
