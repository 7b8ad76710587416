package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yndnr/dev-go/internal/core/domain"
	"github.com/yndnr/dev-go/internal/infra/confloader"
)

// Load builds the CLI configuration from defaults, the YAML file at path,
// DEV_* environment variables and flag overrides (dotted keys such as
// "settings.dir").
//
// An empty path means DefaultConfigPath, which may be absent. An explicit
// path must exist.
func Load(path string, overrides map[string]any) (*CLIConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	if _, err := os.Stat(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		path = ""
	}

	cfg := Default()
	loader := confloader.NewLoader(
		confloader.WithEnvPrefix(EnvPrefix),
		confloader.WithConfigFile(path),
		confloader.WithOverrides(overrides),
	)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	dir, err := ResolveDir(cfg.Settings.Dir)
	if err != nil {
		return nil, err
	}
	cfg.Settings.Dir = dir

	return cfg, nil
}

// ResolveDir expands a leading "~" and returns an absolute, cleaned path.
func ResolveDir(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", domain.ErrInvalidArgument.WithDetails("settings directory is empty")
	}

	if dir == "~" || strings.HasPrefix(dir, "~/") || strings.HasPrefix(dir, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	return abs, nil
}
