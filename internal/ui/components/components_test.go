/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ijuttt/showcase/internal/app"
	"github.com/ijuttt/showcase/internal/theme"
	"github.com/ijuttt/showcase/internal/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keyMsgRight      = tea.KeyMsg{Type: tea.KeyRight}
	keyMsgLeft       = tea.KeyMsg{Type: tea.KeyLeft}
	keyMsgShiftRight = tea.KeyMsg{Type: tea.KeyShiftRight}
	keyMsgEnd        = tea.KeyMsg{Type: tea.KeyEnd}
	keyMsgHome       = tea.KeyMsg{Type: tea.KeyHome}
	keyMsgSpace      = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyMsgEnter      = tea.KeyMsg{Type: tea.KeyEnter}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func focused[C Component](c C) C {
	c.SetFocused(true)
	c.SetWidth(40)
	return c
}

func TestUnfocusedComponentsIgnoreKeys(t *testing.T) {
	all := []Component{
		NewThemePicker(),
		NewFreeTextInput(),
		NewButton("Submit", true),
		NewSlider(),
		NewCheckbox(),
		NewToggler(),
		NewScrollPane(),
	}
	for _, c := range all {
		for _, msg := range []tea.Msg{keyMsgRight, keyMsgSpace, keyMsgEnter, runes("a")} {
			ev, _ := c.Update(msg)
			assert.Nil(t, ev, "%T emitted on %v without focus", c, msg)
		}
	}
}

func TestThemePickerEmitsNeighbours(t *testing.T) {
	p := focused(NewThemePicker())
	p.Sync(app.State{Theme: theme.Nord})

	ev, _ := p.Update(keyMsgRight)
	assert.Equal(t, app.ThemeChanged{Theme: theme.SolarizedLight}, ev)

	ev, _ = p.Update(keyMsgLeft)
	assert.Equal(t, app.ThemeChanged{Theme: theme.Dracula}, ev)

	assert.Equal(t, theme.Nord, p.Selected(), "picker must not change without Sync")
	assert.Contains(t, p.View(styles.For(theme.Nord)), "Nord")
}

func TestTextInputEmitsFullValue(t *testing.T) {
	in := focused(NewFreeTextInput())

	ev, _ := in.Update(runes("he"))
	assert.Equal(t, app.TextChanged{Text: "he"}, ev)

	ev, _ = in.Update(runes("llo"))
	assert.Equal(t, app.TextChanged{Text: "hello"}, ev)

	ev, _ = in.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, ev, "cursor movement is not a change")
}

func TestUsernameInputEmitsUsernameChanged(t *testing.T) {
	in := focused(NewUsernameInput())
	ev, _ := in.Update(runes("ada"))
	assert.Equal(t, app.UsernameChanged{Text: "ada"}, ev)
}

func TestTextInputSyncFromState(t *testing.T) {
	in := NewFreeTextInput()
	in.Sync(app.State{TextValue: "from state", Username: "ignored"})
	assert.Equal(t, "from state", in.Value())

	user := NewUsernameInput()
	user.Sync(app.State{TextValue: "ignored", Username: "ada"})
	assert.Equal(t, "ada", user.Value())
}

func TestButton(t *testing.T) {
	b := focused(NewButton("Submit", true))
	ev, _ := b.Update(keyMsgEnter)
	assert.Equal(t, app.ButtonPressed{}, ev)

	disabled := focused(NewButton("Submit", false))
	ev, _ = disabled.Update(keyMsgEnter)
	assert.Nil(t, ev)
	assert.False(t, disabled.Enabled())
	assert.Contains(t, disabled.View(styles.For(theme.Default)), "Submit")
}

func TestSliderSteps(t *testing.T) {
	s := focused(NewSlider())
	s.Sync(app.State{SliderValue: 50})

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want float64
	}{
		{"right", keyMsgRight, 51},
		{"left", keyMsgLeft, 49},
		{"l", runes("l"), 51},
		{"shift right", keyMsgShiftRight, 60},
		{"end", keyMsgEnd, 100},
		{"home", keyMsgHome, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, _ := s.Update(tt.msg)
			assert.Equal(t, app.SliderChanged{Value: tt.want}, ev)
		})
	}
}

func TestSliderClampsAtBounds(t *testing.T) {
	s := focused(NewSlider())

	s.Sync(app.State{SliderValue: 95})
	ev, _ := s.Update(keyMsgShiftRight)
	assert.Equal(t, app.SliderChanged{Value: 100}, ev)

	s.Sync(app.State{SliderValue: 100})
	ev, _ = s.Update(keyMsgRight)
	assert.Nil(t, ev, "no event when already at the maximum")

	s.Sync(app.State{SliderValue: 0})
	ev, _ = s.Update(keyMsgLeft)
	assert.Nil(t, ev, "no event when already at the minimum")
}

func TestSliderView(t *testing.T) {
	s := focused(NewSlider())
	s.Sync(app.State{SliderValue: 42})
	out := s.View(styles.For(theme.Default))
	assert.Contains(t, out, "42.0")
	assert.Equal(t, 1, strings.Count(out, "●"))
}

func TestCheckboxAndTogglerCarryAbsoluteValues(t *testing.T) {
	c := focused(NewCheckbox())
	ev, _ := c.Update(keyMsgSpace)
	assert.Equal(t, app.CheckboxToggled{Checked: true}, ev)

	// Without a Sync the widget still shows false, so the same event repeats.
	ev, _ = c.Update(keyMsgSpace)
	assert.Equal(t, app.CheckboxToggled{Checked: true}, ev)

	c.Sync(app.State{CheckboxValue: true})
	ev, _ = c.Update(keyMsgEnter)
	assert.Equal(t, app.CheckboxToggled{Checked: false}, ev)
	assert.Contains(t, c.View(styles.For(theme.Default)), "[x]")

	tg := focused(NewToggler())
	ev, _ = tg.Update(keyMsgSpace)
	assert.Equal(t, app.TogglerToggled{On: true}, ev)
	tg.Sync(app.State{TogglerValue: true})
	assert.True(t, tg.On())
}

func TestScrollPaneScrollsWithoutEvents(t *testing.T) {
	p := focused(NewScrollPane())
	require.False(t, p.AtBottom())
	assert.Contains(t, p.View(styles.For(theme.Default)), "Scroll me!")

	for i := 0; i < 60; i++ {
		ev, _ := p.Update(tea.KeyMsg{Type: tea.KeyDown})
		require.Nil(t, ev)
	}
	assert.True(t, p.AtBottom())
	assert.Contains(t, p.View(styles.For(theme.Default)), "You did it!")
}
