/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ijuttt/showcase/internal/app"
	"github.com/ijuttt/showcase/internal/ui/styles"
)

// Button is the Submit button. A disabled button still takes focus but
// never emits an event.
type Button struct {
	focusState
	label   string
	enabled bool
}

// NewButton creates a button.
func NewButton(label string, enabled bool) *Button {
	return &Button{label: label, enabled: enabled}
}

// Enabled reports whether pressing the button emits ButtonPressed.
func (b *Button) Enabled() bool {
	return b.enabled
}

// Sync implements Component. The button reads nothing from the state.
func (b *Button) Sync(app.State) {}

// Update implements Component.
func (b *Button) Update(msg tea.Msg) (app.Event, tea.Cmd) {
	if !b.focused || !b.enabled {
		return nil, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keyActivate) {
		return app.ButtonPressed{}, nil
	}
	return nil, nil
}

// View implements Component.
func (b *Button) View(st styles.Styles) string {
	switch {
	case !b.enabled:
		return st.ButtonDisabled.Render(b.label)
	case b.focused:
		return st.ButtonFocused.Render(b.label)
	default:
		return st.Button.Render(b.label)
	}
}
