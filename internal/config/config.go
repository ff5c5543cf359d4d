/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package config provides configuration defaults, loading and path discovery for showcase.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ijuttt/showcase/internal/app"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	// AppName is the application identifier.
	AppName = "showcase"

	// ConfigFileName is the file looked up in each config directory.
	ConfigFileName = "config.toml"

	// SystemConfigDir is the system-wide config directory.
	SystemConfigDir = "/etc/showcase"
)

// -----------------------------------------------------------------------------
// Front-ends
// -----------------------------------------------------------------------------

const (
	FrontendGio   = "gio"
	FrontendTUI   = "tui"
	FrontendGocui = "gocui"
)

// Frontends lists the accepted values of general.frontend.
var Frontends = []string{FrontendGio, FrontendTUI, FrontendGocui}

// LogLevels lists the accepted values of general.log_level.
var LogLevels = []string{"debug", "info", "warn", "error"}

// -----------------------------------------------------------------------------
// Environment Variables
// -----------------------------------------------------------------------------

const (
	// EnvConfig points at an explicit config file.
	EnvConfig = "SHOWCASE_CONFIG"

	EnvFrontend = "SHOWCASE_FRONTEND"
	EnvVariant  = "SHOWCASE_VARIANT"
	EnvLogLevel = "SHOWCASE_LOG_LEVEL"
	EnvLogFile  = "SHOWCASE_LOG_FILE"

	// EnvXDGConfigHome is the XDG config home environment variable.
	EnvXDGConfigHome = "XDG_CONFIG_HOME"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// -----------------------------------------------------------------------------
// Config Types
// -----------------------------------------------------------------------------

// Config is the complete application configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Window  WindowConfig  `toml:"window"`
}

// GeneralConfig selects the front-end, variant and logging.
type GeneralConfig struct {
	Frontend string `toml:"frontend"`
	Variant  string `toml:"variant"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

// WindowConfig describes the desktop window. Sizes are in dp, text in sp.
type WindowConfig struct {
	Title    string  `toml:"title"`
	Width    float32 `toml:"width"`
	Height   float32 `toml:"height"`
	Centered bool    `toml:"centered"`
	TextSize float32 `toml:"text_size"`
	MaxWidth float32 `toml:"max_width"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			Frontend: FrontendGio,
			Variant:  app.VariantStyling.String(),
			LogLevel: "info",
		},
		Window: WindowConfig{
			Title:    "Awesome Iced Demo",
			Width:    377,
			Height:   533,
			Centered: true,
			TextSize: 14,
			MaxWidth: 600,
		},
	}
}

// Variant returns the parsed variant. Call Validate first.
func (c *Config) Variant() app.Variant {
	v, _ := app.ParseVariant(c.General.Variant)
	return v
}

// Validate checks every field that has a closed set of values.
func (c *Config) Validate() error {
	if !contains(Frontends, c.General.Frontend) {
		return fmt.Errorf("%w: frontend %q (want one of %s)",
			ErrInvalid, c.General.Frontend, strings.Join(Frontends, ", "))
	}
	if _, err := app.ParseVariant(c.General.Variant); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !contains(LogLevels, c.General.LogLevel) {
		return fmt.Errorf("%w: log_level %q (want one of %s)",
			ErrInvalid, c.General.LogLevel, strings.Join(LogLevels, ", "))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %vx%v", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TextSize <= 0 {
		return fmt.Errorf("%w: text_size %v", ErrInvalid, c.Window.TextSize)
	}
	if c.Window.MaxWidth <= 0 {
		return fmt.Errorf("%w: max_width %v", ErrInvalid, c.Window.MaxWidth)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------
// Path Resolution
// -----------------------------------------------------------------------------

// GetConfigPaths returns an ordered list of config files to try.
// Priority order:
//  1. $SHOWCASE_CONFIG (if set)
//  2. $XDG_CONFIG_HOME/showcase/config.toml (or ~/.config/showcase/config.toml)
//  3. /etc/showcase/config.toml (system default)
func GetConfigPaths() []string {
	var paths []string

	if envPath := os.Getenv(EnvConfig); envPath != "" {
		paths = append(paths, envPath)
	}

	xdgConfigHome := os.Getenv(EnvXDGConfigHome)
	if xdgConfigHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			xdgConfigHome = filepath.Join(home, ".config")
		}
	}
	if xdgConfigHome != "" {
		paths = append(paths, filepath.Join(xdgConfigHome, AppName, ConfigFileName))
	}

	paths = append(paths, filepath.Join(SystemConfigDir, ConfigFileName))

	return paths
}
