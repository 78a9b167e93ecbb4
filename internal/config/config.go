// Package config loads anthroping's read-only settings.
//
// Priority: environment variables (ANTHROPING_*) > file passed with --config >
// user config file > defaults. Configuration is never written back.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "ANTHROPING_"

// Configuration represents the anthroping settings
type Configuration struct {
	App       string `koanf:"app" validate:"required"`
	Timeout   int    `koanf:"timeout" validate:"min=1,max=300"`
	SoundsDir string `koanf:"sounds_dir" validate:"required"`
	SoundExt  string `koanf:"sound_ext" validate:"required"`
	Voice     string `koanf:"voice" validate:"required"`
	Debug     bool   `koanf:"debug"`
}

// Load loads configuration from the user config file, localConfigPath, and the environment.
// An empty localConfigPath skips that layer; a non-empty one must exist.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to apply default %s: %w", key, err)
		}
	}

	if userPath := UserConfigPath(); userPath != "" {
		if err := loadFile(k, userPath); err != nil {
			return nil, fmt.Errorf("failed to load user config: %w", err)
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", localConfigPath, err)
		}
		if err := loadFile(k, localConfigPath); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	// Override with environment variables (highest priority)
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.SoundsDir = expandHomePath(cfg.SoundsDir)

	return &cfg, nil
}

// loadFile loads path with the parser matching its extension.
func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		parser = json.Parser()
	case ".yml", ".yaml":
		parser = YAMLParser()
	default:
		return fmt.Errorf("unsupported config format %q (use .yml, .yaml or .json)", filepath.Ext(path))
	}
	return k.Load(file.Provider(path), parser)
}

// UserConfigPath returns the first existing user config file, or "".
// It looks in $XDG_CONFIG_HOME/anthroping (default ~/.config/anthroping) for
// config.yml, config.yaml, then config.json.
func UserConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}

	for _, name := range []string{"config.yml", "config.yaml", "config.json"} {
		path := filepath.Join(dir, "anthroping", name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// envTransform converts environment variable names to config keys
// Example: ANTHROPING_SOUNDS_DIR -> sounds_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
