/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package logging builds the zap logger used across showcase.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction.
type Options struct {
	// Level is one of debug, info, warn, error.
	Level string
	// File receives log output. Empty means stderr, unless Quiet is set.
	File string
	// Quiet discards output when no File is given. Terminal front-ends set
	// it because stderr shares the screen they draw on.
	Quiet bool
}

// New returns a production-style logger for opts.
func New(opts Options) (*zap.Logger, error) {
	if opts.File == "" && opts.Quiet {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Sampling = nil
	if opts.File != "" {
		config.OutputPaths = []string{opts.File}
		config.ErrorOutputPaths = []string{opts.File}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
