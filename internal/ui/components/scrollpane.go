/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ijuttt/showcase/internal/app"
	"github.com/ijuttt/showcase/internal/ui/styles"
)

const (
	// ScrollPaneHeight is the visible height in rows.
	ScrollPaneHeight = 5
	// scrollSpacerRows separates the two captions so that the second one
	// is only reachable by scrolling.
	scrollSpacerRows = 40
)

// ScrollPane is a fixed-height region with more content than fits.
// Scrolling is presentation only and produces no events.
type ScrollPane struct {
	focusState
	vp viewport.Model
}

// NewScrollPane creates the "Scroll me!" pane.
func NewScrollPane() *ScrollPane {
	vp := viewport.New(20, ScrollPaneHeight)
	vp.MouseWheelEnabled = true
	vp.SetContent(scrollContent())
	return &ScrollPane{vp: vp}
}

func scrollContent() string {
	var b strings.Builder
	b.WriteString("Scroll me!\n")
	b.WriteString(strings.Repeat("\n", scrollSpacerRows))
	b.WriteString("You did it!")
	return b.String()
}

// AtBottom reports whether the last line is visible.
func (p *ScrollPane) AtBottom() bool {
	return p.vp.AtBottom()
}

// SetWidth implements Component.
func (p *ScrollPane) SetWidth(width int) {
	p.width = width
	// Border and padding take four columns.
	p.vp.Width = max(1, width-4)
}

// Sync implements Component. The pane reads nothing from the state.
func (p *ScrollPane) Sync(app.State) {}

// Update implements Component. Wheel events are handled even without focus.
func (p *ScrollPane) Update(msg tea.Msg) (app.Event, tea.Cmd) {
	switch msg.(type) {
	case tea.MouseMsg:
	case tea.KeyMsg:
		if !p.focused {
			return nil, nil
		}
	default:
		return nil, nil
	}
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return nil, cmd
}

// View implements Component.
func (p *ScrollPane) View(st styles.Styles) string {
	frame := st.Panel
	if p.focused {
		frame = st.ActivePanel
	}
	border := styles.BuildTitledBorder("Scroll", p.vp.Width+4, lipgloss.RoundedBorder())
	return frame.Border(border).Render(p.vp.View())
}
