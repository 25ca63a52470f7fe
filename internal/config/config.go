// Package config holds the configuration surface of the file browser. All
// values can come from the YAML config file or be overridden by command
// line flags; parsing of the flags themselves happens in cmd.
package config

import (
	"os"
	"path/filepath"

	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/errors"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
type Config struct {
	Browser struct {
		Dir         string   `yaml:"dir"`           // Start directory ("" = working directory)
		ShowHidden  bool     `yaml:"show_hidden"`   // Show hidden files initially
		Depth       int      `yaml:"depth"`         // Scan depth, 0 = unlimited
		OnlyDirs    bool     `yaml:"only_dirs"`     // List only directories
		OnlyFiles   bool     `yaml:"only_files"`    // List only regular files
		Exclude     []string `yaml:"exclude"`       // Glob patterns excluded from listings
		SortByDepth bool     `yaml:"sort_by_depth"` // Sort entries by depth before type
		NoSortByType bool    `yaml:"no_sort_by_type"` // Disable directories-first ordering
		Stdin       bool     `yaml:"stdin"`         // Read the initial listing from stdin
	} `yaml:"browser"`
	Open struct {
		Cmd   string `yaml:"cmd"`   // Command template used to open files
		Dmenu bool   `yaml:"dmenu"` // Print the selected path instead of opening it
	} `yaml:"open"`
	Display struct {
		DisableIcons    bool     `yaml:"disable_icons"`     // Disable icon lookup
		DisableStatus   bool     `yaml:"disable_status"`    // Disable the status line
		DisableModeKeys bool     `yaml:"disable_mode_keys"` // Disable next/previous hidden toggling
		HiddenSymbol    string   `yaml:"hidden_symbol"`     // Status marker while hidden files show
		NoHiddenSymbol  string   `yaml:"no_hidden_symbol"`  // Status marker while they don't
		PathSep         string   `yaml:"path_sep"`          // Breadcrumb separator in the status line
		UpText          string   `yaml:"up_text"`           // Display name of the parent entry
		IconThemes      []string `yaml:"icon_themes"`       // Icon theme names, in lookup order
	} `yaml:"display"`
	Debug bool `yaml:"debug"` // Enable debug logging
}

// Default values applied before the config file and flags are read.
const (
	DefaultCmd            = "xdg-open '%s'"
	DefaultHiddenSymbol   = "[+]"
	DefaultNoHiddenSymbol = "[-]"
	DefaultPathSep        = " / "
	DefaultUpText         = ".."
	DefaultDepth          = 1
)

// New returns the default configuration.
func New() *Config {
	cfg := &Config{}
	cfg.Browser.Depth = DefaultDepth
	cfg.Open.Cmd = DefaultCmd
	cfg.Display.HiddenSymbol = DefaultHiddenSymbol
	cfg.Display.NoHiddenSymbol = DefaultNoHiddenSymbol
	cfg.Display.PathSep = DefaultPathSep
	cfg.Display.UpText = DefaultUpText
	return cfg
}

// LoadConfig loads configuration from the default location
// (~/.config/filebrowser/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return LoadConfigFile(filepath.Join(home, ".config", "filebrowser", "config.yaml"))
}

// LoadConfigFile loads configuration from a specific file path. If the file
// doesn't exist, returns the default configuration. Values absent from the
// file keep their defaults.
func LoadConfigFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, err)
	}

	return cfg, nil
}

// Validate checks values that cannot be repaired with a default.
func (c *Config) Validate() error {
	if c.Browser.Dir != "" {
		if _, err := os.Stat(c.Browser.Dir); err != nil {
			return errors.NewConfigError("start directory does not exist", c.Browser.Dir, err)
		}
	}
	if c.Browser.Depth < 0 {
		return errors.NewConfigError("depth must not be negative", "depth", nil)
	}
	if c.Browser.OnlyDirs && c.Browser.OnlyFiles {
		return errors.NewConfigError("only_dirs and only_files are mutually exclusive", "only_dirs", nil)
	}
	return nil
}
