/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from explicitPath, or from the first existing file
// in GetConfigPaths when explicitPath is empty. If no file exists, the
// defaults are used. Environment overrides are applied in every case.
func Load(explicitPath string) (*Config, string, error) {
	if explicitPath != "" {
		cfg, err := LoadFromFile(explicitPath)
		return cfg, explicitPath, err
	}

	for _, p := range GetConfigPaths() {
		if _, err := os.Stat(p); err == nil {
			cfg, err := LoadFromFile(p)
			return cfg, p, err
		}
	}

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, "", cfg.Validate()
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes TOML over the defaults, applies environment
// overrides and validates the result.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c *Config) Encode(w io.Writer) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvFrontend); v != "" {
		cfg.General.Frontend = strings.ToLower(v)
	}
	if v := os.Getenv(EnvVariant); v != "" {
		cfg.General.Variant = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.General.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.General.LogFile = v
	}
}
