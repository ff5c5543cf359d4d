/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package gocui provides the minimal gocui-based terminal front-end.
package gocui

import (
	"errors"
	"fmt"
	"strings"

	lib "github.com/jroimartin/gocui"
	"go.uber.org/zap"

	"github.com/ijuttt/showcase/internal/app"
	"github.com/ijuttt/showcase/internal/ui/render"
)

// -----------------------------------------------------------------------------
// View Names
// -----------------------------------------------------------------------------

const (
	ViewTheme    = "theme"
	ViewText     = "text"
	ViewSubmit   = "submit"
	ViewSlider   = "slider"
	ViewProgress = "progress"
	ViewScroll   = "scroll"
	ViewCheckbox = "checkbox"
	ViewToggler  = "toggler"
	ViewUsername = "username"
	ViewFooter   = "footer"
	ViewNotice   = "notice"
)

// allViews lists every view the form may create.
var allViews = []string{
	ViewTheme, ViewText, ViewSubmit, ViewSlider, ViewProgress,
	ViewScroll, ViewCheckbox, ViewToggler, ViewUsername, ViewFooter,
}

// TooSmallMessage is shown while the terminal cannot fit the form.
const TooSmallMessage = "Terminal too small. Resize to continue, ctrl+c quits."

// -----------------------------------------------------------------------------
// Adapter Implementation
// -----------------------------------------------------------------------------

// Adapter implements ui.UI using gocui.
type Adapter struct {
	gui    *lib.Gui
	log    *zap.Logger
	ctrl   *app.Controller
	form   *Form
	layout *Layout

	tooSmall bool
}

// New creates a new gocui adapter.
func New(log *zap.Logger) (*Adapter, error) {
	if log == nil {
		log = zap.NewNop()
	}
	g, err := lib.NewGui(lib.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	g.Highlight = true
	g.SelFgColor = lib.ColorGreen
	return &Adapter{gui: g, log: log.Named("gocui")}, nil
}

// Run implements ui.UI.
func (a *Adapter) Run(ctrl *app.Controller) error {
	a.ctrl = ctrl
	a.form = NewForm(ctrl, a.log)
	a.gui.SetManagerFunc(a.layoutManager)
	if err := a.setupBindings(); err != nil {
		return err
	}
	err := a.gui.MainLoop()
	if errors.Is(err, lib.ErrQuit) {
		return nil
	}
	return err
}

// Close implements ui.UI.
func (a *Adapter) Close() {
	a.gui.Close()
}

// -----------------------------------------------------------------------------
// Layout Management
// -----------------------------------------------------------------------------

type viewSpec struct {
	name   string
	title  string
	bounds Bounds
}

// formViews lists the form views for l, or nothing when l cannot fit them.
func formViews(l *Layout) []viewSpec {
	if l.IsTerminalTooSmall() {
		return nil
	}
	views := []viewSpec{
		{ViewTheme, " Theme: ", l.ThemeBounds()},
		{ViewText, "", l.TextBounds()},
		{ViewSubmit, "", l.SubmitBounds()},
		{ViewSlider, "", l.SliderBounds()},
		{ViewProgress, "", l.ProgressBounds()},
		{ViewScroll, " Scroll ", l.ScrollBounds()},
		{ViewCheckbox, "", l.CheckboxBounds()},
		{ViewToggler, "", l.TogglerBounds()},
	}
	if b, ok := l.UsernameBounds(); ok {
		views = append(views, viewSpec{ViewUsername, "", b})
	}
	return views
}

// layoutManager creates and updates all views.
func (a *Adapter) layoutManager(g *lib.Gui) error {
	maxX, maxY := g.Size()
	a.layout = NewLayout(maxX, maxY, a.ctrl.Variant().HasUsername())

	views := formViews(a.layout)
	if views == nil {
		return a.showNotice(g)
	}
	if a.tooSmall {
		a.tooSmall = false
		if err := g.DeleteView(ViewNotice); err != nil && err != lib.ErrUnknownView {
			return err
		}
	}

	for _, spec := range views {
		if err := a.setupView(g, spec.name, spec.title, spec.bounds); err != nil {
			return err
		}
	}
	if err := a.setupFooter(g); err != nil {
		return err
	}

	if cur := g.CurrentView(); cur == nil || cur.Name() == ViewNotice {
		if err := a.focus(a.form.Focused()); err != nil {
			return err
		}
	}
	return a.renderAll()
}

// showNotice replaces the form with a single notice until the terminal grows.
// Input views are rebuilt from the controller state afterwards.
func (a *Adapter) showNotice(g *lib.Gui) error {
	if !a.tooSmall {
		a.tooSmall = true
		for _, name := range allViews {
			if err := g.DeleteView(name); err != nil && err != lib.ErrUnknownView {
				return err
			}
		}
	}

	b := a.layout.NoticeBounds()
	v, err := g.SetView(ViewNotice, b.X0, b.Y0, b.X1, b.Y1)
	if err != nil && err != lib.ErrUnknownView {
		return err
	}
	v.Frame = false
	v.Wrap = true
	v.Clear()
	fmt.Fprint(v, TooSmallMessage)

	g.Cursor = false
	_, err = g.SetCurrentView(ViewNotice)
	return err
}

// setupView creates or resizes a framed view.
func (a *Adapter) setupView(g *lib.Gui, name, title string, b Bounds) error {
	v, err := g.SetView(name, b.X0, b.Y0, b.X1, b.Y1)
	if err != nil && err != lib.ErrUnknownView {
		return err
	}
	if err != lib.ErrUnknownView {
		return nil
	}

	v.Title = title
	switch name {
	case ViewText:
		a.setupInput(v, "Type something...", a.ctrl.State().TextValue)
	case ViewUsername:
		a.setupInput(v, "What is Your Name?", a.ctrl.State().Username)
	}
	return nil
}

// setupInput turns v into an editable single-line input.
func (a *Adapter) setupInput(v *lib.View, hint, text string) {
	v.Title = " " + hint + " "
	v.Editable = true
	v.Editor = lib.EditorFunc(func(v *lib.View, key lib.Key, ch rune, mod lib.Modifier) {
		if ignoredInputKey(key) {
			return
		}
		lib.DefaultEditor.Edit(v, key, ch, mod)
		a.form.Edit(v.Name(), viewText(v))
	})
	if text != "" {
		fmt.Fprint(v, text)
		v.SetCursor(len(text), 0)
	}
}

// ignoredInputKey reports keys that would break a single-line input.
func ignoredInputKey(key lib.Key) bool {
	switch key {
	case lib.KeyEnter, lib.KeyArrowUp, lib.KeyArrowDown:
		return true
	}
	return false
}

// viewText returns the single line of an input view.
func viewText(v *lib.View) string {
	return firstLine(v.Buffer())
}

func firstLine(buf string) string {
	line, _, _ := strings.Cut(buf, "\n")
	return line
}

// setupFooter initializes the footer/help view.
func (a *Adapter) setupFooter(g *lib.Gui) error {
	b := a.layout.FooterBounds()
	v, err := g.SetView(ViewFooter, b.X0, b.Y0, b.X1, b.Y1)
	if err != nil && err != lib.ErrUnknownView {
		return err
	}
	v.Frame = false
	return nil
}

// -----------------------------------------------------------------------------
// Rendering
// -----------------------------------------------------------------------------

// renderAll updates the content of every non-editable view.
func (a *Adapter) renderAll() error {
	s := a.ctrl.State()
	v := a.ctrl.Variant()

	a.write(ViewTheme, render.Theme(s.Theme))
	a.write(ViewSubmit, render.Button("Submit", v.SubmitEnabled()))
	a.write(ViewSlider, render.Slider(s.SliderValue, a.layout.SliderBounds().Width()))
	a.write(ViewProgress, render.Progress(s.SliderValue, a.layout.ProgressBounds().Width()))
	a.write(ViewCheckbox, render.Checkbox(s.CheckboxValue))
	a.write(ViewToggler, render.Toggler(s.TogglerValue))
	a.write(ViewFooter, render.Status(s, v)+"\n"+render.Help())

	if sv, err := a.gui.View(ViewScroll); err == nil && len(sv.BufferLines()) <= 1 {
		sv.Clear()
		fmt.Fprint(sv, strings.Join(render.ScrollLines(), "\n"))
	}
	return nil
}

func (a *Adapter) write(name, content string) {
	v, err := a.gui.View(name)
	if err != nil {
		return
	}
	v.Clear()
	fmt.Fprint(v, content)
}

// -----------------------------------------------------------------------------
// Key Bindings
// -----------------------------------------------------------------------------

type binding struct {
	view    string
	key     interface{}
	handler func(*lib.Gui, *lib.View) error
}

// setupBindings configures keybindings.
func (a *Adapter) setupBindings() error {
	bindings := []binding{
		{"", lib.KeyCtrlC, a.quit},
		{"", lib.KeyTab, a.nextView},
		{"", lib.KeyCtrlP, a.prevView},
		{"", lib.KeyArrowLeft, a.adjust(-SliderStep)},
		{"", lib.KeyArrowRight, a.adjust(SliderStep)},
		{"", lib.KeyPgdn, a.adjust(-SliderBigStep)},
		{"", lib.KeyPgup, a.adjust(SliderBigStep)},
		{ViewScroll, lib.KeyArrowUp, a.scroll(-1)},
		{ViewScroll, lib.KeyArrowDown, a.scroll(1)},
	}

	// Plain keys only act outside the text inputs.
	for _, view := range a.form.Order() {
		if IsEditable(view) {
			continue
		}
		bindings = append(bindings,
			binding{view, 'q', a.quit},
			binding{view, lib.KeySpace, a.activate},
			binding{view, lib.KeyEnter, a.activate},
		)
	}

	for _, b := range bindings {
		if err := a.gui.SetKeybinding(b.view, b.key, lib.ModNone, b.handler); err != nil {
			return err
		}
	}
	return nil
}

func (a *Adapter) quit(g *lib.Gui, v *lib.View) error {
	return lib.ErrQuit
}

func (a *Adapter) nextView(g *lib.Gui, v *lib.View) error {
	if a.tooSmall {
		return nil
	}
	return a.focus(a.form.Next())
}

func (a *Adapter) prevView(g *lib.Gui, v *lib.View) error {
	if a.tooSmall {
		return nil
	}
	return a.focus(a.form.Prev())
}

// focus makes name the current view and shows the cursor for inputs.
func (a *Adapter) focus(name string) error {
	if _, err := a.gui.SetCurrentView(name); err != nil {
		return err
	}
	a.gui.Cursor = IsEditable(name)
	a.log.Debug("focus", zap.String("view", name))
	return nil
}

func (a *Adapter) adjust(steps float64) func(*lib.Gui, *lib.View) error {
	return func(g *lib.Gui, v *lib.View) error {
		if v != nil && IsEditable(v.Name()) {
			moveCursor(v, int(steps))
			return nil
		}
		if v != nil {
			a.form.Adjust(v.Name(), steps)
		}
		return nil
	}
}

// moveCursor keeps ←/→ working inside inputs despite the global bindings.
func moveCursor(v *lib.View, delta int) {
	if delta > 0 {
		lib.DefaultEditor.Edit(v, lib.KeyArrowRight, 0, lib.ModNone)
	} else if delta < 0 {
		lib.DefaultEditor.Edit(v, lib.KeyArrowLeft, 0, lib.ModNone)
	}
}

func (a *Adapter) activate(g *lib.Gui, v *lib.View) error {
	a.form.Activate(v.Name())
	return nil
}

func (a *Adapter) scroll(delta int) func(*lib.Gui, *lib.View) error {
	return func(g *lib.Gui, v *lib.View) error {
		_, sy := v.Size()
		ox, oy := v.Origin()
		oy = clampOrigin(oy+delta, len(render.ScrollLines()), sy)
		return v.SetOrigin(ox, oy)
	}
}

// clampOrigin keeps a scroll origin within [0, lines-height].
func clampOrigin(origin, lines, height int) int {
	if maxOrigin := lines - height; origin > maxOrigin {
		origin = maxOrigin
	}
	if origin < 0 {
		origin = 0
	}
	return origin
}
