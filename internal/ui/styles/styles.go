/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package styles provides Lipgloss styles for the TUI, derived from a theme palette.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ijuttt/showcase/internal/theme"
)

// Styles is the full set of styles for one theme.
type Styles struct {
	Palette theme.Palette

	// Colors
	Background lipgloss.Color
	Text       lipgloss.Color
	Dim        lipgloss.Color
	Surface    lipgloss.Color
	Primary    lipgloss.Color
	OnPrimary  lipgloss.Color
	Success    lipgloss.Color
	Danger     lipgloss.Color

	// Frame
	App         lipgloss.Style
	Title       lipgloss.Style
	Rule        lipgloss.Style
	Panel       lipgloss.Style
	ActivePanel lipgloss.Style

	// Widgets
	Label          lipgloss.Style
	FocusedLabel   lipgloss.Style
	Value          lipgloss.Style
	Hint           lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
	Checked        lipgloss.Style
	Unchecked      lipgloss.Style
	Cursor         lipgloss.Style

	// Status bar
	StatusBar lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
}

// For builds the styles for a theme.
func For(id theme.ID) Styles {
	p := id.Palette()
	s := Styles{
		Palette:    p,
		Background: lipgloss.Color(p.Background),
		Text:       lipgloss.Color(p.Text),
		Dim:        lipgloss.Color(p.Dim()),
		Surface:    lipgloss.Color(p.Surface()),
		Primary:    lipgloss.Color(p.Primary),
		OnPrimary:  lipgloss.Color(p.OnPrimary()),
		Success:    lipgloss.Color(p.Success),
		Danger:     lipgloss.Color(p.Danger),
	}

	// -------------------------------------------------------------------------
	// Frame
	// -------------------------------------------------------------------------

	s.App = lipgloss.NewStyle().
		Foreground(s.Text).
		Padding(1, 2)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.Primary)

	s.Rule = lipgloss.NewStyle().
		Foreground(s.Surface)

	s.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Surface).
		Padding(0, 1)

	s.ActivePanel = s.Panel.
		BorderForeground(s.Primary)

	// -------------------------------------------------------------------------
	// Widgets
	// -------------------------------------------------------------------------

	s.Label = lipgloss.NewStyle().
		Foreground(s.Text)

	s.FocusedLabel = lipgloss.NewStyle().
		Foreground(s.Primary).
		Bold(true)

	s.Value = lipgloss.NewStyle().
		Foreground(s.Primary)

	s.Hint = lipgloss.NewStyle().
		Foreground(s.Dim).
		Italic(true)

	s.Button = lipgloss.NewStyle().
		Foreground(s.OnPrimary).
		Background(s.Primary).
		Padding(0, 1)

	s.ButtonFocused = s.Button.
		Bold(true).
		Underline(true)

	s.ButtonDisabled = lipgloss.NewStyle().
		Foreground(s.Dim).
		Background(s.Surface).
		Padding(0, 1)

	s.Checked = lipgloss.NewStyle().
		Foreground(s.Success).
		Bold(true)

	s.Unchecked = lipgloss.NewStyle().
		Foreground(s.Dim)

	s.Cursor = lipgloss.NewStyle().
		Foreground(s.Primary)

	// -------------------------------------------------------------------------
	// Status Bar
	// -------------------------------------------------------------------------

	s.StatusBar = lipgloss.NewStyle().
		Foreground(s.Dim).
		Padding(0, 1)

	s.HelpKey = lipgloss.NewStyle().
		Foreground(s.Primary).
		Bold(true)

	s.HelpDesc = lipgloss.NewStyle().
		Foreground(s.Dim)

	return s
}
