package configs

import (
	"os"

	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	// Path of the sqlite file holding the book.
	Path string `yaml:"path"`
}

type AppConfig struct {
	Database DatabaseConfig `yaml:"database"`
	// CashBalance is the bank balance used by the runway estimate,
	// maintained by hand in the config until bank sync exists.
	CashBalance int64 `yaml:"cash_balance"`
}

// DefaultConfig is what a fresh checkout runs with, a local sqlite
// file next to the binary.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Database: DatabaseConfig{
			Path: "keiri.db",
		},
	}
}

// LoadConfig reads a yaml config, falling back to defaults when the
// file does not exist. KEIRI_DB_PATH overrides the database path so
// deployments can relocate the book without editing the file.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if dbpath := os.Getenv("KEIRI_DB_PATH"); dbpath != "" {
		cfg.Database.Path = dbpath
	}

	return cfg, nil
}
