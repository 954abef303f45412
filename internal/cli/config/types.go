// Package config provides configuration management for the unccalc CLI.
//
// Values are layered from built-in defaults, an optional YAML file,
// UNCCALC_* environment variables and explicitly set command-line flags,
// each overriding the one before.
package config

// Config holds all CLI configuration options.
type Config struct {
	Verbose  bool   `koanf:"verbose"`
	LogLevel string `koanf:"log_level"`
	Color    string `koanf:"color"`
	Prompt   string `koanf:"prompt"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default configuration values.
const (
	DefaultLogLevel = "warn"
	DefaultColor    = ColorAuto
	DefaultPrompt   = "Select (1-4): "
	EnvPrefix       = "UNCCALC_"
)

// configFileNames are searched in the working directory when no --config is given.
var configFileNames = []string{"unccalc.yaml", "unccalc.yml"}
