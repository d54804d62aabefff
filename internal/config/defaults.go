package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/hangman.yaml
var defaultYAML []byte

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Attempts:      MinAttempts,
		MaxWordLength: MaxWordLength,
		LogLevel:      "warn",
		SSH: SSHSettings{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
