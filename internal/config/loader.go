package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load assembles the configuration from defaults, an optional YAML file,
// and environment variables, in increasing priority. The file comes from
// CONFIG_PATH when set (a missing file is then an error), otherwise from
// ./config.yaml when present. The result is validated before returning.
func Load() (*Config, error) {
	var cfg Config

	path, required := configPath()
	switch _, err := os.Stat(path); {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case required:
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// configPath returns the YAML path to try and whether its absence is fatal.
func configPath() (string, bool) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, true
	}
	return "./config.yaml", false
}
