// Package config handles configuration loading for pathcheck.
// It supports XDG config paths, project-level overrides, and environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for pathcheck.
type Config struct {
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Toolchain ToolchainConfig `mapstructure:"toolchain"`
	Checks    ChecksConfig    `mapstructure:"checks"`
	Run       RunConfig       `mapstructure:"run"`
	Templates TemplatesConfig `mapstructure:"templates"`
	History   HistoryConfig   `mapstructure:"history"`
}

// CatalogConfig locates the requirement catalog and the learner projects.
type CatalogConfig struct {
	// Path points at an authored catalog YAML. Empty means the built-in
	// catalog.
	Path string `mapstructure:"path"`
	// BasePath is the learning path root that exercise paths resolve
	// against. Empty means the current directory.
	BasePath string `mapstructure:"base_path"`
}

// ToolchainConfig overrides build and test command auto-detection.
type ToolchainConfig struct {
	BuildCmd []string `mapstructure:"build_cmd"`
	TestCmd  []string `mapstructure:"test_cmd"`
}

// ChecksConfig tunes individual check execution.
type ChecksConfig struct {
	// Timeout bounds each spawned build or test process.
	Timeout time.Duration `mapstructure:"timeout"`
	// TailLines caps captured process output on failures.
	TailLines int `mapstructure:"tail_lines"`
}

// RunConfig tunes batch validation runs.
type RunConfig struct {
	// Workers bounds concurrent exercise validations. Zero means one
	// worker per CPU.
	Workers int `mapstructure:"workers"`
	// Deadline bounds a whole level or catalog run. Zero disables it.
	Deadline time.Duration `mapstructure:"deadline"`
}

// TemplatesConfig points at authored feedback template overlays.
type TemplatesConfig struct {
	Path string `mapstructure:"path"`
}

// HistoryConfig controls the run-history store.
type HistoryConfig struct {
	// Enabled turns on persistence of run summaries. Off by default.
	Enabled bool `mapstructure:"enabled"`
	// Path is the history database file. Empty means
	// .pathcheck/history.db under the learning path root.
	Path string `mapstructure:"path"`
}

// Load loads configuration from XDG paths, project overrides, and
// environment variables. Precedence, highest to lowest:
// 1. Environment variables (PATHCHECK_*)
// 2. Project config (.pathcheck.yaml in current directory or parent)
// 3. User config (~/.config/pathcheck/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("PATHCHECK")
	v.AutomaticEnv()
	v.BindEnv("catalog.base_path", "PATHCHECK_BASE_PATH")
	v.BindEnv("history.enabled", "PATHCHECK_HISTORY_ENABLED")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Catalog.BasePath = os.ExpandEnv(cfg.Catalog.BasePath)
	cfg.Catalog.Path = os.ExpandEnv(cfg.Catalog.Path)
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Checks: ChecksConfig{
			Timeout:   2 * time.Minute,
			TailLines: 50,
		},
		Run: RunConfig{
			Deadline: 30 * time.Minute,
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.base_path", "")

	v.SetDefault("checks.timeout", "2m")
	v.SetDefault("checks.tail_lines", 50)

	v.SetDefault("run.workers", 0)
	v.SetDefault("run.deadline", "30m")

	v.SetDefault("templates.path", "")

	v.SetDefault("history.enabled", false)
	v.SetDefault("history.path", "")
}

// GetUserConfigPath returns the user config file location.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// getUserConfigDir returns the XDG config directory for pathcheck.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "pathcheck")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "pathcheck")
	}
	return filepath.Join(home, ".config", "pathcheck")
}

// findProjectConfig searches for .pathcheck.yaml in the current directory
// and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".pathcheck.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}
