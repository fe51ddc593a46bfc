// Package config loads tmuxify defaults from file and environment.
//
// Precedence (highest to lowest):
//  1. Command-line flags (applied by the caller)
//  2. Environment variables (TMUXIFY_*, VISUAL/EDITOR, OTEL_*)
//  3. Config file
//  4. Built-in defaults
//
// Config file search order:
//  1. .tmuxify.yaml in the current directory
//  2. ~/.config/tmuxify/config.yaml
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/timvw/tmuxify/internal/env"
	"github.com/timvw/tmuxify/internal/model"
	"gopkg.in/yaml.v3"
)

// Direnv allow policies.
const (
	DirenvAsk    = "ask"
	DirenvAlways = "always"
	DirenvNever  = "never"
)

// Config holds all tmuxify configuration.
type Config struct {
	// Wizard defaults
	TmuxpLocation string `yaml:"tmuxp_location"` // "home", "project" or empty to prompt
	DefaultLayout string `yaml:"default_layout"` // preselected layout in the menu
	Force         bool   `yaml:"force"`
	DirenvAllow   string `yaml:"direnv_allow"` // ask, always, never
	Editor        string `yaml:"editor"`

	// Output
	Theme    string `yaml:"theme"`     // dark, light
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// OTEL
	OTELEndpoint string `yaml:"otel_endpoint"`
	OTELHeaders  string `yaml:"otel_headers"`

	// Parsed values (not from YAML, set after loading)
	Location *model.TmuxpLocation `yaml:"-"`
	Layout   model.Layout         `yaml:"-"`
	Level    log.Level            `yaml:"-"`

	// ConfigFile is the path to the config file that was loaded (empty if none).
	ConfigFile string `yaml:"-"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		DefaultLayout: string(model.LayoutTiled),
		DirenvAllow:   DirenvAsk,
		Theme:         "dark",
		LogLevel:      "warn",
	}
}

// Load reads configuration from the config file and environment.
// cwd is the directory searched for a project-local .tmuxify.yaml.
func Load(e env.Env, cwd string) (*Config, error) {
	cfg := Defaults()

	path, data, err := findConfigFile(e, cwd)
	if err != nil {
		return nil, err
	}
	if path != "" {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
		mergeFile(cfg, &fileCfg)
	}

	mergeEnv(cfg, e)

	if err := cfg.parse(); err != nil {
		if cfg.ConfigFile != "" {
			return nil, fmt.Errorf("%s: %w", cfg.ConfigFile, err)
		}
		return nil, err
	}
	return cfg, nil
}

func (c *Config) parse() error {
	if c.TmuxpLocation != "" {
		loc, err := model.ParseLocationArg(c.TmuxpLocation)
		if err != nil {
			return err
		}
		c.Location = &loc
	}

	layout, err := model.ParseLayout(c.DefaultLayout)
	if err != nil {
		return fmt.Errorf("default_layout: %w", err)
	}
	c.Layout = layout

	switch c.DirenvAllow {
	case DirenvAsk, DirenvAlways, DirenvNever:
	default:
		return fmt.Errorf("invalid direnv_allow %q (supported: ask, always, never)", c.DirenvAllow)
	}

	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	c.Level = level
	return nil
}

// findConfigFile returns the first config file found and its contents.
// An empty path means no file exists; other read errors are returned.
func findConfigFile(e env.Env, cwd string) (string, []byte, error) {
	var candidates []string
	if cwd != "" {
		candidates = append(candidates, filepath.Join(cwd, ".tmuxify.yaml"))
	}
	if home, err := e.HomeDir(); err == nil && home != "" {
		candidates = append(candidates, filepath.Join(home, ".config", "tmuxify", "config.yaml"))
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err == nil {
			return path, data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	return "", nil, nil
}

// mergeFile applies non-zero file values onto cfg.
func mergeFile(cfg *Config, file *Config) {
	if file.TmuxpLocation != "" {
		cfg.TmuxpLocation = file.TmuxpLocation
	}
	if file.DefaultLayout != "" {
		cfg.DefaultLayout = file.DefaultLayout
	}
	if file.Force {
		cfg.Force = true
	}
	if file.DirenvAllow != "" {
		cfg.DirenvAllow = file.DirenvAllow
	}
	if file.Editor != "" {
		cfg.Editor = file.Editor
	}
	if file.Theme != "" {
		cfg.Theme = file.Theme
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if file.OTELEndpoint != "" {
		cfg.OTELEndpoint = file.OTELEndpoint
	}
	if file.OTELHeaders != "" {
		cfg.OTELHeaders = file.OTELHeaders
	}
}

// mergeEnv applies environment variables onto cfg. Env always wins over
// the file.
func mergeEnv(cfg *Config, e env.Env) {
	get := func(key string) string { return env.Getenv(e, key) }

	if v := get("TMUXIFY_TMUXP_LOCATION"); v != "" {
		cfg.TmuxpLocation = v
	}
	if v := get("TMUXIFY_DEFAULT_LAYOUT"); v != "" {
		cfg.DefaultLayout = v
	}
	if v := strings.ToLower(get("TMUXIFY_FORCE")); v == "true" || v == "1" {
		cfg.Force = true
	}
	if v := get("TMUXIFY_DIRENV_ALLOW"); v != "" {
		cfg.DirenvAllow = v
	}
	if v := get("TMUXIFY_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := get("TMUXIFY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := get("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTELEndpoint = v
	}
	if v := get("OTEL_EXPORTER_OTLP_HEADERS"); v != "" {
		cfg.OTELHeaders = v
	}

	// Editor: $VISUAL, then $EDITOR override the file.
	if v := get("VISUAL"); v != "" {
		cfg.Editor = v
	} else if v := get("EDITOR"); v != "" {
		cfg.Editor = v
	}
}
