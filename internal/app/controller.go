/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Controller owns the state record of one running application.
//
// A Controller is driven from a single UI event loop and is not safe for
// concurrent use.
type Controller struct {
	variant Variant
	state   State
	log     *zap.Logger
}

// NewController creates a controller holding the initial state.
// A nil logger is replaced with a no-op logger.
func NewController(v Variant, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		variant: v,
		state:   Initialize(),
		log:     log.Named("controller"),
	}
}

// Variant returns the configured variant.
func (c *Controller) Variant() Variant {
	return c.variant
}

// State returns a copy of the current state for rendering.
func (c *Controller) State() State {
	return c.state
}

// Dispatch applies ev to the owned state. Events that are not part of the
// variant are dropped and Dispatch returns false.
func (c *Controller) Dispatch(ev Event) bool {
	if !c.variant.Supports(ev) {
		if ev != nil {
			c.log.Debug("event dropped", zap.String("event", ev.Name()), zap.Stringer("variant", c.variant))
		}
		return false
	}
	c.state = Reduce(c.state, ev)
	if ce := c.log.Check(zap.DebugLevel, "event applied"); ce != nil {
		ce.Write(zap.String("event", ev.Name()), zap.Object("state", c.state))
	}
	return true
}

// MarshalLogObject implements zapcore.ObjectMarshaler. Text fields are
// logged by length only.
func (s State) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("theme", s.Theme.String())
	enc.AddInt("text_len", len(s.TextValue))
	enc.AddInt("username_len", len(s.Username))
	enc.AddFloat64("slider", s.SliderValue)
	enc.AddBool("checkbox", s.CheckboxValue)
	enc.AddBool("toggler", s.TogglerValue)
	return nil
}
