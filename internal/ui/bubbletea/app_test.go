/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package bubbletea

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ijuttt/showcase/internal/app"
	"github.com/ijuttt/showcase/internal/theme"
)

// Focus order indices for the styling variant.
const (
	focusTheme = iota
	focusText
	focusSubmit
	focusSlider
	focusScroll
	focusCheckbox
	focusToggler
	focusUsername
)

var (
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
)

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msgs through Update, returning the final model.
func send(t *testing.T, a App, msgs ...tea.Msg) App {
	t.Helper()
	var m tea.Model = a
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	out, ok := m.(App)
	require.True(t, ok)
	return out
}

// focusOn tabs forward until index is focused.
func focusOn(t *testing.T, a App, index int) App {
	t.Helper()
	for a.Focused() != index {
		a = send(t, a, tabKey)
	}
	return a
}

func newTestApp(v app.Variant) (App, *app.Controller) {
	ctrl := app.NewController(v, zap.NewNop())
	return NewApp(ctrl, nil), ctrl
}

func TestNewAppRendersInitialState(t *testing.T) {
	a, ctrl := newTestApp(app.VariantStyling)
	assert.Equal(t, app.Initialize(), ctrl.State())

	view := a.View()
	assert.Contains(t, view, "Theme:")
	assert.Contains(t, view, "Light")
	assert.Contains(t, view, "Type something...")
	assert.Contains(t, view, "Submit")
	assert.Contains(t, view, "Scroll me!")
	assert.Contains(t, view, "Check me!")
	assert.Contains(t, view, "Toggle me!")
	assert.Contains(t, view, "What is Your Name?")
}

func TestBasicVariantHasNoUsername(t *testing.T) {
	a, _ := newTestApp(app.VariantBasic)
	assert.NotContains(t, a.View(), "What is Your Name?")

	a = focusOn(t, a, focusToggler)
	a = send(t, a, tabKey)
	assert.Equal(t, focusTheme, a.Focused(), "focus wraps after the toggler")
}

func TestFocusCycles(t *testing.T) {
	a, _ := newTestApp(app.VariantStyling)
	require.Equal(t, focusTheme, a.Focused())

	a = send(t, a, tabKey, tabKey)
	assert.Equal(t, focusSubmit, a.Focused())

	a = send(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusText, a.Focused())

	a = send(t, a, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusUsername, a.Focused())
}

func TestInteractionsReachTheController(t *testing.T) {
	a, ctrl := newTestApp(app.VariantStyling)

	a = send(t, a, rightKey)
	a = focusOn(t, a, focusText)
	a = send(t, a, typeText("hello"))
	a = focusOn(t, a, focusSlider)
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEnd}, tea.KeyMsg{Type: tea.KeyShiftLeft})
	a = focusOn(t, a, focusCheckbox)
	a = send(t, a, spaceKey)
	a = focusOn(t, a, focusToggler)
	a = send(t, a, spaceKey, spaceKey)
	a = focusOn(t, a, focusUsername)
	a = send(t, a, typeText("ada"))

	want := app.State{
		Theme:         theme.Dark,
		TextValue:     "hello",
		Username:      "ada",
		SliderValue:   90,
		CheckboxValue: true,
		TogglerValue:  false,
	}
	if diff := cmp.Diff(want, ctrl.State()); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, a.View(), "Dark")
}

func TestSubmitLeavesStateUntouched(t *testing.T) {
	a, ctrl := newTestApp(app.VariantStyling)
	a = focusOn(t, a, focusText)
	a = send(t, a, typeText("draft"))
	before := ctrl.State()

	a = focusOn(t, a, focusSubmit)
	_ = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, before, ctrl.State())
}

func TestQuitKeys(t *testing.T) {
	a, _ := newTestApp(app.VariantStyling)

	_, cmd := a.Update(typeText("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestQIsTextWhileTyping(t *testing.T) {
	a, ctrl := newTestApp(app.VariantStyling)
	a = focusOn(t, a, focusText)

	_ = send(t, a, typeText("q"))
	assert.Equal(t, "q", ctrl.State().TextValue)
}

func TestEscDoesNotQuit(t *testing.T) {
	keys := DefaultKeyMap()
	esc := tea.KeyMsg{Type: tea.KeyEsc}
	assert.False(t, key.Matches(esc, keys.ForceQuit))
	assert.False(t, key.Matches(esc, keys.Quit))

	a, ctrl := newTestApp(app.VariantStyling)
	a = focusOn(t, a, focusText)
	a = send(t, a, esc, typeText("x"))
	assert.Equal(t, focusText, a.Focused())
	assert.Equal(t, "x", ctrl.State().TextValue)
}

func TestWindowResizeClampsContent(t *testing.T) {
	assert.Equal(t, MaxContentWidth, contentWidth(200))
	assert.Equal(t, MinContentWidth, contentWidth(10))
	assert.Equal(t, 46, contentWidth(50))

	a, _ := newTestApp(app.VariantStyling)
	a = send(t, a, tea.WindowSizeMsg{Width: 50, Height: 40})
	assert.NotEmpty(t, a.View())
}
