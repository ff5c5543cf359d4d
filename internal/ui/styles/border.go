/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BuildTitledBorder returns a lipgloss.Border whose Top field contains the
// panel title embedded into the border line, e.g.:
//
//	╭─ Scroll ───────────╮
func BuildTitledBorder(title string, totalWidth int, b lipgloss.Border) lipgloss.Border {
	// innerWidth excludes the two corner runes
	innerWidth := totalWidth - lipgloss.Width(b.TopLeft) - lipgloss.Width(b.TopRight)
	if innerWidth <= 0 || title == "" {
		return b
	}

	topChar := b.Top
	if topChar == "" {
		topChar = "─"
	}

	label := topChar + " " + title + " "
	remaining := innerWidth - lipgloss.Width(label)
	if remaining < 0 {
		remaining = 0
	}

	b.Top = label + strings.Repeat(topChar, remaining)
	return b
}

// HorizontalRule renders a full-width separator line.
func (s Styles) HorizontalRule(width int) string {
	if width <= 0 {
		return ""
	}
	return s.Rule.Render(strings.Repeat("─", width))
}

// VerticalRule renders a separator column of the given height.
func (s Styles) VerticalRule(height int) string {
	if height <= 0 {
		return ""
	}
	return s.Rule.Render(strings.TrimSuffix(strings.Repeat("│\n", height), "\n"))
}
