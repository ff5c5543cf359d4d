/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ijuttt/showcase/internal/app"
	"github.com/ijuttt/showcase/internal/ui/styles"
)

// Checkbox is the "Check me!" box.
type Checkbox struct {
	focusState
	checked bool
}

// NewCheckbox creates an unchecked box.
func NewCheckbox() *Checkbox {
	return &Checkbox{}
}

// Checked returns the value shown.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// Sync implements Component.
func (c *Checkbox) Sync(s app.State) {
	c.checked = s.CheckboxValue
}

// Update implements Component. The event carries the new value, not a flip.
func (c *Checkbox) Update(msg tea.Msg) (app.Event, tea.Cmd) {
	if !c.focused {
		return nil, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keyActivate) {
		return app.CheckboxToggled{Checked: !c.checked}, nil
	}
	return nil, nil
}

// View implements Component.
func (c *Checkbox) View(st styles.Styles) string {
	box := st.Unchecked.Render("[ ]")
	if c.checked {
		box = st.Checked.Render("[x]")
	}
	return box + " " + c.label(st, "Check me!")
}

// Toggler is the "Toggle me!" switch.
type Toggler struct {
	focusState
	on bool
}

// NewToggler creates a switch in the off position.
func NewToggler() *Toggler {
	return &Toggler{}
}

// On returns the value shown.
func (t *Toggler) On() bool {
	return t.on
}

// Sync implements Component.
func (t *Toggler) Sync(s app.State) {
	t.on = s.TogglerValue
}

// Update implements Component. The event carries the new value, not a flip.
func (t *Toggler) Update(msg tea.Msg) (app.Event, tea.Cmd) {
	if !t.focused {
		return nil, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keyActivate) {
		return app.TogglerToggled{On: !t.on}, nil
	}
	return nil, nil
}

// View implements Component.
func (t *Toggler) View(st styles.Styles) string {
	track := st.Unchecked.Render("(●   )")
	if t.on {
		track = st.Checked.Render("(   ●)")
	}
	return t.label(st, "Toggle me!") + " " + track
}
