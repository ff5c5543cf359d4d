/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ijuttt/showcase/internal/app"
	"github.com/ijuttt/showcase/internal/config"
	"github.com/ijuttt/showcase/internal/logging"
	"github.com/ijuttt/showcase/internal/theme"
	"github.com/ijuttt/showcase/internal/ui"
	"github.com/ijuttt/showcase/internal/ui/bubbletea"
	"github.com/ijuttt/showcase/internal/ui/gocui"
)

// rootOptions holds flag values and what PersistentPreRunE builds from them.
type rootOptions struct {
	configPath string
	frontend   string
	variant    string
	verbose    bool

	cfg     *config.Config
	cfgPath string
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Widget showcase driven by a single state reducer",
		Long: `showcase renders a theme picker, text inputs, a button, a slider with a
progress bar, a scrollable area, a checkbox and a toggler. Every interaction
becomes an event that a pure reducer folds into the application state, and
the screen is redrawn from that state.

Front-ends:
  gio    desktop window (default)
  tui    full terminal UI
  gocui  minimal terminal UI

Variants:
  styling  with a username input and an active Submit button (default)
  basic    without the username input; Submit is disabled`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default: first of the search paths)")
	flags.StringVarP(&opts.frontend, "frontend", "f", "", "front-end: gio, tui or gocui")
	flags.StringVar(&opts.variant, "variant", "", "variant: styling or basic")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newThemesCmd(), newConfigCmd(opts))
	return cmd
}

// load resolves the effective configuration and builds the logger.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, path, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("frontend") {
		cfg.General.Frontend = o.frontend
	}
	if flags.Changed("variant") {
		cfg.General.Variant = o.variant
	}
	if o.verbose {
		cfg.General.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level: cfg.General.LogLevel,
		File:  cfg.General.LogFile,
		Quiet: cfg.General.Frontend != config.FrontendGio,
	})
	if err != nil {
		return err
	}

	o.cfg, o.cfgPath, o.logger = cfg, path, logger
	o.logger.Debug("config loaded",
		zap.String("path", path),
		zap.String("frontend", cfg.General.Frontend),
		zap.String("variant", cfg.General.Variant),
	)
	return nil
}

// run starts the selected front-end on a fresh controller.
func (o *rootOptions) run() error {
	ctrl := app.NewController(o.cfg.Variant(), o.logger)

	frontend, err := o.newFrontend()
	if err != nil {
		return err
	}
	defer frontend.Close()

	o.logger.Info("starting",
		zap.String("frontend", o.cfg.General.Frontend),
		zap.Stringer("variant", ctrl.Variant()),
		zap.Stringer("theme", theme.Default),
	)
	return frontend.Run(ctrl)
}

func (o *rootOptions) newFrontend() (ui.UI, error) {
	switch o.cfg.General.Frontend {
	case config.FrontendGio:
		return newGioFrontend(o.cfg, o.logger)
	case config.FrontendTUI:
		return bubbletea.New(o.logger), nil
	case config.FrontendGocui:
		return gocui.New(o.logger)
	}
	return nil, fmt.Errorf("%w: frontend %q", config.ErrInvalid, o.cfg.General.Frontend)
}
