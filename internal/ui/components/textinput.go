/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ijuttt/showcase/internal/app"
	"github.com/ijuttt/showcase/internal/ui/styles"
)

// TextInput is a single-line editor bound to one string field of the state.
type TextInput struct {
	focusState
	input textinput.Model
	read  func(app.State) string
	emit  func(string) app.Event
}

// NewTextInput creates an input showing placeholder while empty.
func NewTextInput(placeholder string, read func(app.State) string, emit func(string) app.Event) *TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	return &TextInput{input: ti, read: read, emit: emit}
}

// NewFreeTextInput creates the "Type something..." input.
func NewFreeTextInput() *TextInput {
	return NewTextInput("Type something...",
		func(s app.State) string { return s.TextValue },
		func(v string) app.Event { return app.TextChanged{Text: v} },
	)
}

// NewUsernameInput creates the "What is Your Name?" input.
func NewUsernameInput() *TextInput {
	return NewTextInput("What is Your Name?",
		func(s app.State) string { return s.Username },
		func(v string) app.Event { return app.UsernameChanged{Text: v} },
	)
}

// Value returns the text currently in the editor.
func (t *TextInput) Value() string {
	return t.input.Value()
}

// SetFocused implements Component.
func (t *TextInput) SetFocused(focused bool) tea.Cmd {
	t.focused = focused
	if focused {
		return t.input.Focus()
	}
	t.input.Blur()
	return nil
}

// SetWidth implements Component.
func (t *TextInput) SetWidth(width int) {
	t.width = width
	t.input.Width = max(1, width-4)
}

// Sync implements Component.
func (t *TextInput) Sync(s app.State) {
	if v := t.read(s); v != t.input.Value() {
		t.input.SetValue(v)
	}
}

// Update implements Component.
func (t *TextInput) Update(msg tea.Msg) (app.Event, tea.Cmd) {
	if !t.focused {
		return nil, nil
	}
	before := t.input.Value()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if after := t.input.Value(); after != before {
		return t.emit(after), cmd
	}
	return nil, cmd
}

// View implements Component.
func (t *TextInput) View(st styles.Styles) string {
	t.input.TextStyle = st.Label
	t.input.PlaceholderStyle = st.Hint
	t.input.Cursor.Style = st.Cursor

	frame := st.Panel
	if t.focused {
		frame = st.ActivePanel
	}
	if t.width > 2 {
		frame = frame.Width(t.width - 2)
	}
	return frame.Render(t.input.View())
}
