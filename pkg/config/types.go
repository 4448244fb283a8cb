// Package config provides configuration management for snipet.
//
// Configuration is loaded from multiple sources with the following precedence:
// 1. Command-line flags (highest priority, applied by the caller)
// 2. Environment variables
// 3. Configuration file
// 4. Default values (lowest priority)
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Server: %s\n", cfg.Server)
package config

// Config represents the complete application configuration.
//
// Invariants:
// - Server must be non-empty
// - Logging.Level is one of debug, info, warn, error
// - Logging.Format is one of text, json, auto
// - Display.Format is one of text, json.
type Config struct {
	// Server is the default backend URL for login and register.
	Server string `yaml:"server"`

	// APIPath is the path prefix under which the backend serves collections.
	APIPath string `yaml:"api_path"`

	// WebURL is the base URL of the web app used for snippet links.
	// Empty derives it from the session's server.
	WebURL string `yaml:"web_url,omitempty"`

	// SessionFile overrides the session file location.
	SessionFile string `yaml:"session_file,omitempty"`

	// Display settings
	Display DisplayConfig `yaml:"display"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig contains display-related settings.
type DisplayConfig struct {
	// Output format (text, json)
	Format string `yaml:"format"`

	// Disable colored output
	NoColor bool `yaml:"no_color"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Log level (debug, info, warn, error)
	Level string `yaml:"level"`

	// Log output destination (stderr, stdout, file path)
	Output string `yaml:"output"`

	// Log format (text, json, auto)
	Format string `yaml:"format"`
}

// Validate checks if the configuration satisfies all invariants.
func (c *Config) Validate() error {
	if c.Server == "" {
		return ErrNoServer
	}

	validDisplayFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validDisplayFormats[c.Display.Format] {
		return ErrInvalidDisplayFormat
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	validFormats := map[string]bool{
		"text": true,
		"json": true,
		"auto": true,
	}
	if !validFormats[c.Logging.Format] {
		return ErrInvalidLogFormat
	}

	return nil
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Server:  DefaultServer,
		APIPath: DefaultAPIPath,
		Display: DisplayConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Output: "stderr",
			Format: "auto",
		},
	}
}
