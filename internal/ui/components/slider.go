/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ijuttt/showcase/internal/app"
	"github.com/ijuttt/showcase/internal/ui/styles"
)

const (
	// SliderStep is the change per arrow key press.
	SliderStep = 1.0
	// SliderBigStep is the change per shifted arrow key press.
	SliderBigStep = 10.0
)

// Slider selects a value in [app.SliderMin, app.SliderMax].
type Slider struct {
	focusState
	value float64
}

// NewSlider creates a slider at the minimum.
func NewSlider() *Slider {
	return &Slider{value: app.SliderMin}
}

// Value returns the position shown.
func (s *Slider) Value() float64 {
	return s.value
}

// Sync implements Component.
func (s *Slider) Sync(st app.State) {
	s.value = st.SliderValue
}

// Update implements Component. Every emitted value is clamped to the
// slider range.
func (s *Slider) Update(msg tea.Msg) (app.Event, tea.Cmd) {
	if !s.focused {
		return nil, nil
	}
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}

	next := s.value
	switch {
	case key.Matches(msgKey, keyBigLeft):
		next -= SliderBigStep
	case key.Matches(msgKey, keyBigRight):
		next += SliderBigStep
	case key.Matches(msgKey, keyLeft):
		next -= SliderStep
	case key.Matches(msgKey, keyRight):
		next += SliderStep
	case key.Matches(msgKey, keyHome):
		next = app.SliderMin
	case key.Matches(msgKey, keyEnd):
		next = app.SliderMax
	default:
		return nil, nil
	}

	next = clamp(next, app.SliderMin, app.SliderMax)
	if next == s.value {
		return nil, nil
	}
	return app.SliderChanged{Value: next}, nil
}

// View implements Component.
func (s *Slider) View(st styles.Styles) string {
	caption := s.label(st, "Slider")
	valueText := fmt.Sprintf(" %5.1f", s.value)

	track := s.width - lipgloss.Width(caption) - len(valueText) - 1
	if track < 3 {
		track = 3
	}
	knob := int((s.value-app.SliderMin)/(app.SliderMax-app.SliderMin)*float64(track-1) + 0.5)

	var b strings.Builder
	b.WriteString(st.Value.Render(strings.Repeat("━", knob)))
	if s.focused {
		b.WriteString(st.FocusedLabel.Render("●"))
	} else {
		b.WriteString(st.Value.Render("●"))
	}
	b.WriteString(st.Rule.Render(strings.Repeat("─", track-1-knob)))

	return caption + " " + b.String() + st.Hint.Render(valueText)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
