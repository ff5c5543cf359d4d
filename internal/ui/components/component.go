/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package components provides the focusable TUI widgets of the showcase form.
//
// Components never change the application state themselves: Update turns
// input into an app.Event for the caller to dispatch, and Sync copies the
// resulting state back in before the next View.
package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ijuttt/showcase/internal/app"
	"github.com/ijuttt/showcase/internal/ui/styles"
)

// Component is a widget that can take keyboard focus.
type Component interface {
	SetFocused(focused bool) tea.Cmd
	Focused() bool
	SetWidth(width int)
	// Sync copies the relevant fields of s into the widget.
	Sync(s app.State)
	// Update handles input. The returned event is nil when the input did
	// not correspond to a user-observable change.
	Update(msg tea.Msg) (app.Event, tea.Cmd)
	View(st styles.Styles) string
}

// -----------------------------------------------------------------------------
// Key Bindings (local to avoid import cycle)
// -----------------------------------------------------------------------------

var (
	keyLeft = key.NewBinding(
		key.WithKeys("left", "h"),
	)
	keyRight = key.NewBinding(
		key.WithKeys("right", "l"),
	)
	keyBigLeft = key.NewBinding(
		key.WithKeys("shift+left", "H", "pgdown"),
	)
	keyBigRight = key.NewBinding(
		key.WithKeys("shift+right", "L", "pgup"),
	)
	keyHome = key.NewBinding(
		key.WithKeys("home", "0"),
	)
	keyEnd = key.NewBinding(
		key.WithKeys("end", "$"),
	)
	keyActivate = key.NewBinding(
		key.WithKeys("enter", " "),
	)
)

// focusState is embedded by every component.
type focusState struct {
	focused bool
	width   int
}

func (f *focusState) SetFocused(focused bool) tea.Cmd {
	f.focused = focused
	return nil
}

func (f *focusState) Focused() bool {
	return f.focused
}

func (f *focusState) SetWidth(width int) {
	f.width = width
}

// label renders a widget caption, highlighted while focused.
func (f *focusState) label(st styles.Styles, text string) string {
	if f.focused {
		return st.FocusedLabel.Render("› " + text)
	}
	return st.Label.Render("  " + text)
}
