/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ijuttt/showcase/internal/app"
	"github.com/ijuttt/showcase/internal/theme"
	"github.com/ijuttt/showcase/internal/ui/styles"
)

// ThemePicker cycles through the built-in themes.
type ThemePicker struct {
	focusState
	selected theme.ID
}

// NewThemePicker creates a picker showing the default theme.
func NewThemePicker() *ThemePicker {
	return &ThemePicker{selected: theme.Default}
}

// Selected returns the theme currently shown.
func (p *ThemePicker) Selected() theme.ID {
	return p.selected
}

// Sync implements Component.
func (p *ThemePicker) Sync(s app.State) {
	p.selected = s.Theme
}

// Update implements Component.
func (p *ThemePicker) Update(msg tea.Msg) (app.Event, tea.Cmd) {
	if !p.focused {
		return nil, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keyLeft):
			return app.ThemeChanged{Theme: p.selected.Prev()}, nil
		case key.Matches(msg, keyRight), key.Matches(msg, keyActivate):
			return app.ThemeChanged{Theme: p.selected.Next()}, nil
		}
	}
	return nil, nil
}

// View implements Component.
func (p *ThemePicker) View(st styles.Styles) string {
	value := st.Value.Render(fmt.Sprintf("‹ %s ›", p.selected))
	position := st.Hint.Render(fmt.Sprintf(" %d/%d", int(p.selected)+1, len(theme.All)))
	return p.label(st, "Theme:") + "\n  " + value + position
}
