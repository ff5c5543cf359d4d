/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package bubbletea provides the terminal front-end using Bubble Tea.
package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ijuttt/showcase/internal/app"
	"github.com/ijuttt/showcase/internal/ui/components"
	"github.com/ijuttt/showcase/internal/ui/styles"
	"github.com/ijuttt/showcase/internal/ui/widgets"
)

// Layout constants, in terminal cells.
const (
	// MaxContentWidth mirrors the desktop window's maximum content width.
	MaxContentWidth = 60
	// MinContentWidth keeps the form usable in narrow terminals.
	MinContentWidth = 30
	// appChromeWidth is the horizontal padding of styles.App.
	appChromeWidth = 4
)

// App is the main application model.
type App struct {
	ctrl *app.Controller
	log  *zap.Logger

	// Components
	themePicker *components.ThemePicker
	textInput   *components.TextInput
	submit      *components.Button
	slider      *components.Slider
	scrollPane  *components.ScrollPane
	checkbox    *components.Checkbox
	toggler     *components.Toggler
	username    *components.TextInput // nil in the basic variant

	// Focus order
	focusables []components.Component
	focus      int

	// Layout
	width  int
	height int
	styles styles.Styles

	keys KeyMap
	help help.Model
}

// NewApp creates the model for ctrl.
func NewApp(ctrl *app.Controller, log *zap.Logger) App {
	if log == nil {
		log = zap.NewNop()
	}
	v := ctrl.Variant()

	a := App{
		ctrl:        ctrl,
		log:         log.Named("tui"),
		themePicker: components.NewThemePicker(),
		textInput:   components.NewFreeTextInput(),
		submit:      components.NewButton("Submit", v.SubmitEnabled()),
		slider:      components.NewSlider(),
		scrollPane:  components.NewScrollPane(),
		checkbox:    components.NewCheckbox(),
		toggler:     components.NewToggler(),
		keys:        DefaultKeyMap(),
		help:        help.New(),
	}
	if v.HasUsername() {
		a.username = components.NewUsernameInput()
	}

	a.focusables = []components.Component{
		a.themePicker,
		a.textInput,
		a.submit,
		a.slider,
		a.scrollPane,
		a.checkbox,
		a.toggler,
	}
	if a.username != nil {
		a.focusables = append(a.focusables, a.username)
	}

	a.focusables[0].SetFocused(true)
	a.sync()
	a.width = MaxContentWidth + appChromeWidth
	a.setWidth(a.width)
	return a
}

// Init initializes the application.
func (a App) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.setWidth(msg.Width)
		return a, nil

	case tea.MouseMsg:
		_, cmd := a.scrollPane.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.ForceQuit):
			return a, tea.Quit

		case key.Matches(msg, a.keys.Next):
			return a, a.moveFocus(1)

		case key.Matches(msg, a.keys.Prev):
			return a, a.moveFocus(-1)
		}

		// Plain keys are text while an input is focused.
		if _, typing := a.focused().(*components.TextInput); !typing {
			switch {
			case key.Matches(msg, a.keys.Quit):
				return a, tea.Quit
			case key.Matches(msg, a.keys.Help):
				a.help.ShowAll = !a.help.ShowAll
				return a, nil
			}
		}
	}

	ev, cmd := a.focused().Update(msg)
	if ev != nil {
		a.dispatch(ev)
	}
	return a, cmd
}

// dispatch hands ev to the controller and re-renders from the new state.
func (a *App) dispatch(ev app.Event) {
	if !a.ctrl.Dispatch(ev) {
		a.log.Warn("front-end emitted an event outside its variant", zap.String("event", ev.Name()))
		return
	}
	a.sync()
}

// sync copies the controller state into every component.
func (a *App) sync() {
	s := a.ctrl.State()
	for _, c := range a.focusables {
		c.Sync(s)
	}
	a.styles = styles.For(s.Theme)
	a.help.Styles.ShortKey = a.styles.HelpKey
	a.help.Styles.ShortDesc = a.styles.HelpDesc
	a.help.Styles.FullKey = a.styles.HelpKey
	a.help.Styles.FullDesc = a.styles.HelpDesc
}

func (a *App) focused() components.Component {
	return a.focusables[a.focus]
}

// Focused returns the index of the focused component in focus order.
func (a App) Focused() int {
	return a.focus
}

// moveFocus shifts focus by delta, wrapping around.
func (a *App) moveFocus(delta int) tea.Cmd {
	n := len(a.focusables)
	cmds := []tea.Cmd{a.focused().SetFocused(false)}
	a.focus = ((a.focus+delta)%n + n) % n
	cmds = append(cmds, a.focused().SetFocused(true))
	return tea.Batch(cmds...)
}

// contentWidth returns the usable form width for a terminal width.
func contentWidth(termWidth int) int {
	w := termWidth - appChromeWidth
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	if w < MinContentWidth {
		w = MinContentWidth
	}
	return w
}

// setWidth recalculates component widths.
func (a *App) setWidth(termWidth int) {
	w := contentWidth(termWidth)
	submitWidth := lipgloss.Width(a.submit.View(a.styles)) + 1

	a.themePicker.SetWidth(w)
	a.textInput.SetWidth(w - submitWidth)
	a.submit.SetWidth(submitWidth)
	a.slider.SetWidth(w)
	a.scrollPane.SetWidth(w / 2)
	a.checkbox.SetWidth(w / 2)
	a.toggler.SetWidth(w / 2)
	if a.username != nil {
		a.username.SetWidth(w)
	}
	a.help.Width = w
}

// View renders the application.
func (a App) View() string {
	st := a.styles
	w := contentWidth(a.width)
	state := a.ctrl.State()

	var b strings.Builder

	b.WriteString(a.themePicker.View(st))
	b.WriteString("\n")
	b.WriteString(st.HorizontalRule(w))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		a.textInput.View(st), " ", a.submit.View(st)))
	b.WriteString("\n\n")

	b.WriteString(a.slider.View(st))
	b.WriteString("\n\n")

	bar := widgets.NewProgressBar(state.SliderValue, w-2).
		WithRange(app.SliderMin, app.SliderMax).
		WithColors(st.Primary, st.Surface)
	b.WriteString("  " + bar.Render())
	b.WriteString("\n\n")

	scroll := a.scrollPane.View(st)
	toggles := lipgloss.JoinVertical(lipgloss.Left,
		a.checkbox.View(st), "", a.toggler.View(st))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		scroll, " ", st.VerticalRule(lipgloss.Height(scroll)), " ", toggles))
	b.WriteString("\n\n")

	if a.username != nil {
		b.WriteString(a.username.View(st))
		b.WriteString("\n\n")
	}

	b.WriteString(a.renderStatusBar(w))

	return st.App.Render(b.String())
}

// renderStatusBar renders the theme name and key hints.
func (a App) renderStatusBar(width int) string {
	left := a.styles.Title.Render(a.ctrl.State().Theme.String()) +
		a.styles.HelpDesc.Render(" · "+a.ctrl.Variant().String())
	return a.styles.StatusBar.Width(width).Render(left + "\n" + a.help.View(a.keys))
}
