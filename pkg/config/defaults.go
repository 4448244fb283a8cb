package config

import (
	"os"
	"path/filepath"
)

// DefaultServer is the backend used when none is configured.
const DefaultServer = "http://127.0.0.1:8090"

// DefaultAPIPath is the backend's collection API prefix.
const DefaultAPIPath = "/api"

// defaultConfigPath returns the default configuration file path.
//
// Returns: <user config dir>/snipet/config.yaml.
func defaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "./config.yaml"
	}

	return filepath.Join(configDir, "snipet", "config.yaml")
}

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return defaultConfigPath()
}
