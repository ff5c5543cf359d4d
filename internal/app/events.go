/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package app

import "github.com/ijuttt/showcase/internal/theme"

// Event is a single user interaction, produced by a front-end and consumed
// exactly once by the reducer. The set of implementations is closed.
type Event interface {
	// Name identifies the event kind in logs.
	Name() string
	isEvent()
}

// ThemeChanged selects a new theme.
type ThemeChanged struct {
	Theme theme.ID
}

// TextChanged carries the full new contents of the free-text input.
type TextChanged struct {
	Text string
}

// UsernameChanged carries the full new contents of the username input.
type UsernameChanged struct {
	Text string
}

// SliderChanged carries the new slider position in [0, 100].
type SliderChanged struct {
	Value float64
}

// CheckboxToggled carries the new absolute checkbox value.
type CheckboxToggled struct {
	Checked bool
}

// TogglerToggled carries the new absolute toggler value.
type TogglerToggled struct {
	On bool
}

// ButtonPressed reports a click on the Submit button.
type ButtonPressed struct{}

func (ThemeChanged) Name() string    { return "theme_changed" }
func (TextChanged) Name() string     { return "text_changed" }
func (UsernameChanged) Name() string { return "username_changed" }
func (SliderChanged) Name() string   { return "slider_changed" }
func (CheckboxToggled) Name() string { return "checkbox_toggled" }
func (TogglerToggled) Name() string  { return "toggler_toggled" }
func (ButtonPressed) Name() string   { return "button_pressed" }

func (ThemeChanged) isEvent()    {}
func (TextChanged) isEvent()     {}
func (UsernameChanged) isEvent() {}
func (SliderChanged) isEvent()   {}
func (CheckboxToggled) isEvent() {}
func (TogglerToggled) isEvent()  {}
func (ButtonPressed) isEvent()   {}
