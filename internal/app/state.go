/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package app provides core application state and the reducer that drives it.
package app

import "github.com/ijuttt/showcase/internal/theme"

// Slider bounds. Front-ends keep SliderValue inside this range.
const (
	SliderMin = 0.0
	SliderMax = 100.0
)

// State is the complete UI state of the showcase. The zero value is the
// initial state.
type State struct {
	Theme         theme.ID
	TextValue     string
	Username      string
	SliderValue   float64
	CheckboxValue bool
	TogglerValue  bool
}

// Initialize returns the all-default state.
func Initialize() State {
	return State{Theme: theme.Default}
}

// Reduce returns the state that results from applying ev to s.
// It never fails and never has side effects.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case ThemeChanged:
		s.Theme = e.Theme
	case TextChanged:
		s.TextValue = e.Text
	case UsernameChanged:
		s.Username = e.Text
	case SliderChanged:
		s.SliderValue = e.Value
	case CheckboxToggled:
		s.CheckboxValue = e.Checked
	case TogglerToggled:
		s.TogglerValue = e.On
	case ButtonPressed:
		// Submit has no effect on state.
	}
	return s
}
