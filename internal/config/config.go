package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the world threat service and tools.
type Config struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	Database DatabaseConfig `yaml:"database"`

	Boss BossConfig `yaml:"boss"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// BossConfig holds the baseline values used when a new boss is created.
// Caps only ever grow from here (via adaptation).
type BossConfig struct {
	Name     string `yaml:"name"`
	BuffCap  int    `yaml:"buff_cap"`
	CurseCap int    `yaml:"curse_cap"`
}

// Default returns the configuration defaults.
func Default() Config {
	return Config{
		LogLevel: "info",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "worldthreat",
			Password: "worldthreat",
			DBName:   "worldthreat",
			SSLMode:  "disable",
		},
		Boss: BossConfig{
			Name:     "The Devourer of Timelines",
			BuffCap:  3,
			CurseCap: 3,
		},
	}
}

// Load loads config from a YAML file. If the file doesn't exist, returns
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
