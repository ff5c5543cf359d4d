/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package gio provides the desktop front-end using Gio.
package gio

import (
	"os"

	gioapp "gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/unit"
	"go.uber.org/zap"

	"github.com/ijuttt/showcase/internal/app"
	"github.com/ijuttt/showcase/internal/config"
	"github.com/ijuttt/showcase/internal/ui/gio/screen"
)

// Options describes the window.
type Options struct {
	Title    string
	Width    unit.Dp
	Height   unit.Dp
	Centered bool
	Screen   screen.Options
}

// OptionsFrom converts the [window] config section.
func OptionsFrom(w config.WindowConfig) Options {
	return Options{
		Title:    w.Title,
		Width:    unit.Dp(w.Width),
		Height:   unit.Dp(w.Height),
		Centered: w.Centered,
		Screen: screen.Options{
			MaxWidth: unit.Dp(w.MaxWidth),
			TextSize: unit.Sp(w.TextSize),
		},
	}
}

// Adapter implements ui.UI using a Gio window.
type Adapter struct {
	log    *zap.Logger
	opts   Options
	window *gioapp.Window

	// OnExit runs on the window goroutine once the window is gone.
	// gioapp.Main never returns, so it must end the process. The default
	// exits with status 1 when err is non-nil.
	OnExit func(err error)
}

// New creates a Gio adapter.
func New(log *zap.Logger, opts Options) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{log: log.Named("gio"), opts: opts}
}

// Run implements ui.UI. It must be called from the main goroutine and does
// not return: the process ends through OnExit when the window closes.
func (a *Adapter) Run(ctrl *app.Controller) error {
	a.window = new(gioapp.Window)
	a.window.Option(
		gioapp.Title(a.opts.Title),
		gioapp.Size(a.opts.Width, a.opts.Height),
	)
	if a.opts.Centered {
		a.window.Perform(system.ActionCenter)
	}

	scr := screen.New(ctrl, a.log, a.opts.Screen)
	go func() {
		err := a.loop(scr)
		if err != nil {
			a.log.Error("window closed with error", zap.Error(err))
		} else {
			a.log.Info("window closed")
		}
		a.exit(err)
	}()

	a.log.Info("window opened",
		zap.String("title", a.opts.Title),
		zap.Stringer("variant", ctrl.Variant()),
	)
	gioapp.Main()
	return nil
}

// loop runs the frame loop until the window is destroyed.
func (a *Adapter) loop(scr *screen.Screen) error {
	var ops op.Ops
	for {
		switch e := a.window.Event().(type) {
		case gioapp.DestroyEvent:
			return e.Err
		case gioapp.FrameEvent:
			gtx := gioapp.NewContext(&ops, e)
			scr.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (a *Adapter) exit(err error) {
	if a.OnExit != nil {
		a.OnExit(err)
		return
	}
	if err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}

// Close implements ui.UI.
func (a *Adapter) Close() {
	if a.window != nil {
		a.window.Perform(system.ActionClose)
	}
}
