/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package screen lays out the desktop widget showcase with Gio.
//
// Screen keeps only widget state. Every frame it reads what the widgets
// picked up from input, turns each difference from the controller state into
// an event, dispatches it and then draws from the updated state. It needs a
// layout.Context but no window, so it can be driven headlessly.
package screen

import (
	"image"
	"image/color"
	"math"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"go.uber.org/zap"

	"github.com/ijuttt/showcase/internal/app"
	"github.com/ijuttt/showcase/internal/theme"
)

// Layout metrics.
const (
	Padding       = unit.Dp(20)
	Spacing       = unit.Dp(20)
	InnerSpacing  = unit.Dp(10)
	FieldPadding  = unit.Dp(5)
	ScrollHeight  = unit.Dp(100)
	ScrollFiller  = unit.Dp(800)
	PickerHeight  = unit.Dp(200)
	RuleThickness = unit.Dp(1)

	DefaultMaxWidth = unit.Dp(600)
	DefaultTextSize = unit.Sp(14)
)

// Options configures a Screen.
type Options struct {
	// MaxWidth caps the content column. Zero means DefaultMaxWidth.
	MaxWidth unit.Dp
	// TextSize is the body text size. Zero means DefaultTextSize.
	TextSize unit.Sp
}

// Screen holds the widget state of the showcase window.
type Screen struct {
	ctrl *app.Controller
	log  *zap.Logger
	opts Options

	th      *material.Theme
	current theme.ID

	// Theme picker
	picker   widget.Clickable
	expanded bool
	choices  widget.List
	choice   widget.Enum

	text     widget.Editor
	submit   widget.Clickable
	slider   widget.Float
	scroll   widget.List
	checkbox widget.Bool
	toggler  widget.Bool
	username widget.Editor
}

// New creates a Screen bound to ctrl.
func New(ctrl *app.Controller, log *zap.Logger, opts Options) *Screen {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = DefaultMaxWidth
	}
	if opts.TextSize <= 0 {
		opts.TextSize = DefaultTextSize
	}

	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.TextSize = opts.TextSize

	s := &Screen{
		ctrl: ctrl,
		log:  log.Named("screen"),
		opts: opts,
		th:   th,
	}
	s.text.SingleLine = true
	s.username.SingleLine = true
	s.choices.Axis = layout.Vertical
	s.scroll.Axis = layout.Vertical
	s.sync(ctrl.State())
	return s
}

// Theme returns the material theme for the current state.
func (s *Screen) Theme() *material.Theme {
	return s.th
}

// Layout handles the input of the frame and draws the showcase.
func (s *Screen) Layout(gtx layout.Context) layout.Dimensions {
	for _, ev := range s.update(gtx) {
		if !s.ctrl.Dispatch(ev) {
			s.log.Warn("screen emitted an event outside its variant", zap.String("event", ev.Name()))
		}
	}
	s.sync(s.ctrl.State())

	paint.Fill(gtx.Ops, s.th.Bg)
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		if maxW := gtx.Dp(s.opts.MaxWidth); gtx.Constraints.Max.X > maxW {
			gtx.Constraints.Max.X = maxW
		}
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.UniformInset(Padding).Layout(gtx, s.layoutContent)
	})
}

// update lets every widget consume its input and returns one event per
// widget whose value now differs from the controller state.
func (s *Screen) update(gtx layout.Context) []app.Event {
	st := s.ctrl.State()
	v := s.ctrl.Variant()
	var events []app.Event

	if s.picker.Clicked(gtx) {
		s.expanded = !s.expanded
	}
	s.choice.Update(gtx)
	if id, err := theme.Parse(s.choice.Value); err == nil && id != st.Theme {
		events = append(events, app.ThemeChanged{Theme: id})
		s.expanded = false
	}

	drainEditor(gtx, &s.text)
	if t := s.text.Text(); t != st.TextValue {
		events = append(events, app.TextChanged{Text: t})
	}

	if v.SubmitEnabled() {
		for s.submit.Clicked(gtx) {
			events = append(events, app.ButtonPressed{})
		}
	}

	s.slider.Update(gtx)
	if s.slider.Value != SliderPosition(st.SliderValue) {
		events = append(events, app.SliderChanged{Value: SliderValue(s.slider.Value)})
	}

	s.checkbox.Update(gtx)
	if s.checkbox.Value != st.CheckboxValue {
		events = append(events, app.CheckboxToggled{Checked: s.checkbox.Value})
	}

	s.toggler.Update(gtx)
	if s.toggler.Value != st.TogglerValue {
		events = append(events, app.TogglerToggled{On: s.toggler.Value})
	}

	if v.HasUsername() {
		drainEditor(gtx, &s.username)
		if t := s.username.Text(); t != st.Username {
			events = append(events, app.UsernameChanged{Text: t})
		}
	}

	return events
}

func drainEditor(gtx layout.Context, ed *widget.Editor) {
	for {
		if _, ok := ed.Update(gtx); !ok {
			return
		}
	}
}

// sync copies st into the widgets and the theme palette.
func (s *Screen) sync(st app.State) {
	s.current = st.Theme
	s.th.Palette = Palette(st.Theme)
	s.choice.Value = st.Theme.Slug()

	if s.text.Text() != st.TextValue {
		s.text.SetText(st.TextValue)
	}
	if s.username.Text() != st.Username {
		s.username.SetText(st.Username)
	}
	s.slider.Value = SliderPosition(st.SliderValue)
	s.checkbox.Value = st.CheckboxValue
	s.toggler.Value = st.TogglerValue
}

// -----------------------------------------------------------------------------
// Layout
// -----------------------------------------------------------------------------

func (s *Screen) layoutContent(gtx layout.Context) layout.Dimensions {
	rows := []layout.Widget{
		s.layoutThemePicker,
		s.layoutHorizontalRule,
		s.layoutTextRow,
		material.Slider(s.th, &s.slider).Layout,
		s.layoutProgress,
		s.layoutScrollRow,
	}
	if s.ctrl.Variant().HasUsername() {
		rows = append(rows, s.layoutField(&s.username, "What is Your Name?"))
	}

	children := make([]layout.FlexChild, 0, 2*len(rows))
	for i, w := range rows {
		if i > 0 {
			children = append(children, layout.Rigid(layout.Spacer{Height: Spacing}.Layout))
		}
		children = append(children, layout.Rigid(w))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func (s *Screen) layoutThemePicker(gtx layout.Context) layout.Dimensions {
	children := []layout.FlexChild{
		layout.Rigid(material.Body1(s.th, "Theme:").Layout),
		layout.Rigid(layout.Spacer{Height: InnerSpacing}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			btn := material.Button(s.th, &s.picker, s.current.String()+"  ▾")
			btn.Inset = layout.UniformInset(FieldPadding)
			return btn.Layout(gtx)
		}),
	}
	if s.expanded {
		children = append(children, layout.Rigid(s.layoutThemeChoices))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func (s *Screen) layoutThemeChoices(gtx layout.Context) layout.Dimensions {
	if maxH := gtx.Dp(PickerHeight); gtx.Constraints.Max.Y > maxH {
		gtx.Constraints.Max.Y = maxH
	}
	return material.List(s.th, &s.choices).Layout(gtx, len(theme.All), func(gtx layout.Context, i int) layout.Dimensions {
		id := theme.All[i]
		return material.RadioButton(s.th, &s.choice, id.Slug(), id.String()).Layout(gtx)
	})
}

func (s *Screen) layoutHorizontalRule(gtx layout.Context) layout.Dimensions {
	size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(RuleThickness))
	return fillRect(gtx, size, s.ruleColor())
}

func (s *Screen) layoutVerticalRule(gtx layout.Context) layout.Dimensions {
	size := image.Pt(gtx.Dp(RuleThickness), gtx.Dp(ScrollHeight))
	return fillRect(gtx, size, s.ruleColor())
}

func (s *Screen) ruleColor() color.NRGBA {
	return theme.NRGBA(s.current.Palette().Dim())
}

func fillRect(gtx layout.Context, size image.Point, c color.NRGBA) layout.Dimensions {
	paint.FillShape(gtx.Ops, c, clip.Rect{Max: size}.Op())
	return layout.Dimensions{Size: size}
}

func (s *Screen) layoutTextRow(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, s.layoutField(&s.text, "Type something...")),
		layout.Rigid(layout.Spacer{Width: InnerSpacing}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if !s.ctrl.Variant().SubmitEnabled() {
				gtx = gtx.Disabled()
			}
			btn := material.Button(s.th, &s.submit, "Submit")
			btn.Inset = layout.UniformInset(FieldPadding)
			return btn.Layout(gtx)
		}),
	)
}

// layoutField returns a bordered single-line editor.
func (s *Screen) layoutField(ed *widget.Editor, hint string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		border := widget.Border{
			Color:        theme.NRGBA(s.current.Palette().Dim()),
			CornerRadius: unit.Dp(2),
			Width:        unit.Dp(1),
		}
		return border.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(FieldPadding).Layout(gtx, material.Editor(s.th, ed, hint).Layout)
		})
	}
}

func (s *Screen) layoutProgress(gtx layout.Context) layout.Dimensions {
	return material.ProgressBar(s.th, SliderPosition(s.ctrl.State().SliderValue)).Layout(gtx)
}

func (s *Screen) layoutScrollRow(gtx layout.Context) layout.Dimensions {
	gtx.Constraints.Max.Y = gtx.Dp(ScrollHeight)
	gtx.Constraints.Min.Y = 0
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, s.layoutScrollArea),
		layout.Rigid(layout.Spacer{Width: InnerSpacing}.Layout),
		layout.Rigid(s.layoutVerticalRule),
		layout.Rigid(layout.Spacer{Width: InnerSpacing}.Layout),
		layout.Rigid(s.layoutToggles),
	)
}

func (s *Screen) layoutScrollArea(gtx layout.Context) layout.Dimensions {
	gtx.Constraints.Min.Y = gtx.Constraints.Max.Y
	return material.List(s.th, &s.scroll).Layout(gtx, 3, func(gtx layout.Context, i int) layout.Dimensions {
		switch i {
		case 0:
			return material.Body1(s.th, "Scroll me!").Layout(gtx)
		case 1:
			return layout.Spacer{Height: ScrollFiller}.Layout(gtx)
		default:
			return material.Body1(s.th, "You did it!").Layout(gtx)
		}
	})
}

func (s *Screen) layoutToggles(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(material.CheckBox(s.th, &s.checkbox, "Check me!").Layout),
		layout.Rigid(layout.Spacer{Height: Spacing}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(material.Body1(s.th, "Toggle me!").Layout),
				layout.Rigid(layout.Spacer{Width: InnerSpacing}.Layout),
				layout.Rigid(material.Switch(s.th, &s.toggler, "Toggle me!").Layout),
			)
		}),
	)
}

// -----------------------------------------------------------------------------
// Conversions
// -----------------------------------------------------------------------------

// Palette converts a showcase theme to a material palette.
func Palette(id theme.ID) material.Palette {
	p := id.Palette()
	return material.Palette{
		Bg:         theme.NRGBA(p.Background),
		Fg:         theme.NRGBA(p.Text),
		ContrastBg: theme.NRGBA(p.Primary),
		ContrastFg: theme.NRGBA(p.OnPrimary()),
	}
}

// SliderValue maps a widget.Float position in [0, 1] to a whole slider
// value in [app.SliderMin, app.SliderMax].
func SliderValue(pos float32) float64 {
	p := math.Max(0, math.Min(1, float64(pos)))
	return math.Round(app.SliderMin + p*(app.SliderMax-app.SliderMin))
}

// SliderPosition is the inverse of SliderValue.
func SliderPosition(v float64) float32 {
	p := (v - app.SliderMin) / (app.SliderMax - app.SliderMin)
	return float32(math.Max(0, math.Min(1, p)))
}
