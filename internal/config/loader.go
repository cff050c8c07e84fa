package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path, applies defaults and validates the result.
// A missing file is not an error; defaults are used instead.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv loads a .env file if present. Existing environment variables win.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ResolveAPIKeys fills Summarizer.APIKeys from the environment for the configured provider
func (c *Config) ResolveAPIKeys() error {
	single, plural := APIKeyEnv(c.Summarizer.Provider)

	var keys []string
	for _, k := range strings.Split(os.Getenv(plural), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	if k := strings.TrimSpace(os.Getenv(single)); k != "" && len(keys) == 0 {
		keys = append(keys, k)
	}

	if len(keys) == 0 {
		return fmt.Errorf("no API key for provider %s: set %s or %s", c.Summarizer.Provider, single, plural)
	}
	c.Summarizer.APIKeys = keys
	return nil
}
