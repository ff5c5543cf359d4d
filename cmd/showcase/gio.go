//go:build !nogio

/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/ijuttt/showcase/internal/config"
	"github.com/ijuttt/showcase/internal/ui"
	"github.com/ijuttt/showcase/internal/ui/gio"
)

func newGioFrontend(cfg *config.Config, logger *zap.Logger) (ui.UI, error) {
	adapter := gio.New(logger, gio.OptionsFrom(cfg.Window))
	adapter.OnExit = func(err error) {
		_ = logger.Sync()
		if err != nil {
			os.Exit(1)
		}
		os.Exit(0)
	}
	return adapter, nil
}
