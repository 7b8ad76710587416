package config

import (
	"os"
	"path/filepath"
)

// EnvPrefix is the prefix of environment variables read into CLIConfig:
// DEV_SETTINGS_DIR sets settings.dir, DEV_LOG_LEVEL sets log.level.
const EnvPrefix = "DEV_"

// CLIConfig is the configuration for the dev CLI.
type CLIConfig struct {
	Settings SettingsConfig `koanf:"settings" yaml:"settings"`

	// Output is the default output format: table, json, yaml.
	Output string `koanf:"output" yaml:"output"`

	Log LogConfig `koanf:"log" yaml:"log"`
}

// SettingsConfig locates the settings directory.
type SettingsConfig struct {
	// Dir is the directory holding one <name>.json file per setting.
	Dir string `koanf:"dir" yaml:"dir"`
}

// LogConfig configures diagnostics on stderr.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level"`   // debug, info, warn, error
	Format string `koanf:"format" yaml:"format"` // text, json
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Settings: SettingsConfig{Dir: DefaultSettingsDir()},
		Output:   "table",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// DefaultSettingsDir returns <user config dir>/dev/config, falling back to
// ~/.dev/config when the platform has no user config directory.
func DefaultSettingsDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "dev", "config")
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".dev", "config")
}

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".dev", "cli.yaml")
}

// DefaultHistoryPath returns where "dev shell" keeps its history.
func DefaultHistoryPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".dev", "history")
}
