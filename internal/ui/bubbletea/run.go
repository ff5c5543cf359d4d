/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package bubbletea

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/ijuttt/showcase/internal/app"
)

// Adapter implements ui.UI using Bubble Tea.
type Adapter struct {
	log     *zap.Logger
	options []tea.ProgramOption
	program *tea.Program
}

// New creates a Bubble Tea adapter. Without options the program uses the
// alternate screen and mouse support.
func New(log *zap.Logger, options ...tea.ProgramOption) *Adapter {
	if len(options) == 0 {
		options = []tea.ProgramOption{
			tea.WithAltScreen(),       // Use alternate screen buffer
			tea.WithMouseCellMotion(), // Enable mouse support
		}
	}
	return &Adapter{log: log, options: options}
}

// Run implements ui.UI.
func (a *Adapter) Run(ctrl *app.Controller) error {
	a.program = tea.NewProgram(NewApp(ctrl, a.log), a.options...)
	if _, err := a.program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

// Close implements ui.UI.
func (a *Adapter) Close() {
	if a.program != nil {
		a.program.Kill()
	}
}
