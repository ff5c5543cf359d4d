/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package widgets provides reusable TUI visualization components.
package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a horizontal bar for a value within [Min, Max].
type ProgressBar struct {
	Value       float64
	Min         float64
	Max         float64
	Width       int
	FilledColor lipgloss.Color
	EmptyColor  lipgloss.Color
	FilledRune  string
	EmptyRune   string
}

// NewProgressBar creates a 0–100 progress bar with default styling.
func NewProgressBar(value float64, width int) ProgressBar {
	return ProgressBar{
		Value:       value,
		Min:         0,
		Max:         100,
		Width:       width,
		FilledColor: lipgloss.Color("62"),  // Blue
		EmptyColor:  lipgloss.Color("240"), // Dark gray
		FilledRune:  "█",
		EmptyRune:   "░",
	}
}

// WithRange sets the value range.
func (p ProgressBar) WithRange(min, max float64) ProgressBar {
	p.Min = min
	p.Max = max
	return p
}

// WithColors sets the filled and empty colours.
func (p ProgressBar) WithColors(filled, empty lipgloss.Color) ProgressBar {
	p.FilledColor = filled
	p.EmptyColor = empty
	return p
}

// Ratio returns the filled fraction, clamped to [0, 1].
func (p ProgressBar) Ratio() float64 {
	if p.Max <= p.Min {
		return 0
	}
	ratio := (p.Value - p.Min) / (p.Max - p.Min)
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	return ratio
}

// FilledCells returns how many of Width cells are filled.
func (p ProgressBar) FilledCells() int {
	if p.Width <= 0 {
		return 0
	}
	return int(p.Ratio()*float64(p.Width) + 0.5)
}

// Render produces the progress bar string.
func (p ProgressBar) Render() string {
	if p.Width <= 0 || p.Max <= p.Min {
		return ""
	}

	filled := p.FilledCells()
	filledStyle := lipgloss.NewStyle().Foreground(p.FilledColor)
	emptyStyle := lipgloss.NewStyle().Foreground(p.EmptyColor)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat(p.FilledRune, filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat(p.EmptyRune, p.Width-filled)))
	return b.String()
}
