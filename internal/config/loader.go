package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Paths lists the places settings are read from.
type Paths struct {
	Custom string // --config flag; must exist when set
	User   string // ~/.hangman/config.yaml
	Local  string // ./configs/hangman.yaml
	DotEnv string // ./.env
}

// DefaultPaths returns the standard search locations.
func DefaultPaths(customPath string) Paths {
	return Paths{
		Custom: customPath,
		User:   userConfigPath("config.yaml"),
		Local:  filepath.Join("configs", "hangman.yaml"),
		DotEnv: ".env",
	}
}

// Load reads settings from the standard locations.
func Load(customPath string) (Settings, error) {
	return LoadPaths(DefaultPaths(customPath))
}

// LoadPaths reads settings.
// Search order: Custom -> User -> Local -> embedded default.
// Environment variables (after loading DotEnv) override file values.
func LoadPaths(p Paths) (Settings, error) {
	cfg, err := loadFile(p)
	if err != nil {
		return cfg, err
	}

	if p.DotEnv != "" {
		if err := godotenv.Load(p.DotEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load %s: %w", p.DotEnv, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

func loadFile(p Paths) (Settings, error) {
	cfg := DefaultSettings()

	// Try custom path first
	if p.Custom != "" {
		data, err := os.ReadFile(p.Custom)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", p.Custom, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", p.Custom, err)
		}
		return cfg, nil
	}

	for _, path := range []string{p.User, p.Local} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultSettings()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultSettings(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hangman", filename)
}
