//go:build nogio

/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package main

import (
	"errors"

	"go.uber.org/zap"

	"github.com/ijuttt/showcase/internal/config"
	"github.com/ijuttt/showcase/internal/ui"
)

// errNoGio is returned when the binary was built with -tags nogio.
var errNoGio = errors.New("desktop front-end not compiled in (built with -tags nogio)")

func newGioFrontend(*config.Config, *zap.Logger) (ui.UI, error) {
	return nil, errNoGio
}
