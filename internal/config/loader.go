package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// AgentConfig is the part of the configuration the sync agent reads. It
// needs no database.
type AgentConfig struct {
	Log  LogConfig  `yaml:"log"`
	Sync SyncConfig `yaml:"sync"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config
	if err := read(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// LoadAgent is Load restricted to the log and sync sections.
func LoadAgent() (*AgentConfig, error) {
	var cfg AgentConfig
	if err := read(&cfg); err != nil {
		return nil, err
	}
	if err := validateLog(cfg.Log); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	if err := cfg.Sync.validate(); err != nil {
		return nil, fmt.Errorf("config: validate: sync: %w", err)
	}
	return &cfg, nil
}

func read(dst any) error {
	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, dst); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return nil
	} else if explicitPath {
		return fmt.Errorf("config: file %s: %w", path, err)
	}

	if err := cleanenv.ReadEnv(dst); err != nil {
		return fmt.Errorf("config: read env: %w", err)
	}
	return nil
}
