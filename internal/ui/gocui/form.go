/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package gocui

import (
	"go.uber.org/zap"

	"github.com/ijuttt/showcase/internal/app"
)

// Slider steps.
const (
	SliderStep    = 1.0
	SliderBigStep = 10.0
)

// Form holds focus and turns view actions into controller events. It knows
// nothing about the terminal, so the adapter stays a thin binding layer.
type Form struct {
	ctrl  *app.Controller
	log   *zap.Logger
	order []string
	focus int
}

// NewForm creates the form for ctrl.
func NewForm(ctrl *app.Controller, log *zap.Logger) *Form {
	if log == nil {
		log = zap.NewNop()
	}
	order := []string{
		ViewTheme,
		ViewText,
		ViewSubmit,
		ViewSlider,
		ViewScroll,
		ViewCheckbox,
		ViewToggler,
	}
	if ctrl.Variant().HasUsername() {
		order = append(order, ViewUsername)
	}
	return &Form{ctrl: ctrl, log: log, order: order}
}

// Order returns the focusable views in tab order.
func (f *Form) Order() []string {
	return f.order
}

// Focused returns the name of the focused view.
func (f *Form) Focused() string {
	return f.order[f.focus]
}

// Next moves focus forward and returns the newly focused view.
func (f *Form) Next() string {
	f.focus = (f.focus + 1) % len(f.order)
	return f.Focused()
}

// Prev moves focus backward and returns the newly focused view.
func (f *Form) Prev() string {
	f.focus = (f.focus - 1 + len(f.order)) % len(f.order)
	return f.Focused()
}

// IsEditable reports whether view takes free text.
func IsEditable(view string) bool {
	return view == ViewText || view == ViewUsername
}

// Adjust handles ←/→ style input on view. steps is signed.
func (f *Form) Adjust(view string, steps float64) bool {
	s := f.ctrl.State()
	switch view {
	case ViewTheme:
		id := s.Theme.Next()
		if steps < 0 {
			id = s.Theme.Prev()
		}
		return f.dispatch(app.ThemeChanged{Theme: id})
	case ViewSlider:
		v := s.SliderValue + steps
		if v < app.SliderMin {
			v = app.SliderMin
		}
		if v > app.SliderMax {
			v = app.SliderMax
		}
		if v == s.SliderValue {
			return false
		}
		return f.dispatch(app.SliderChanged{Value: v})
	}
	return false
}

// Activate handles space/enter on view.
func (f *Form) Activate(view string) bool {
	s := f.ctrl.State()
	switch view {
	case ViewTheme:
		return f.dispatch(app.ThemeChanged{Theme: s.Theme.Next()})
	case ViewSubmit:
		if !f.ctrl.Variant().SubmitEnabled() {
			return false
		}
		return f.dispatch(app.ButtonPressed{})
	case ViewCheckbox:
		return f.dispatch(app.CheckboxToggled{Checked: !s.CheckboxValue})
	case ViewToggler:
		return f.dispatch(app.TogglerToggled{On: !s.TogglerValue})
	}
	return false
}

// Edit reports the full text of an editable view.
func (f *Form) Edit(view, text string) bool {
	s := f.ctrl.State()
	switch view {
	case ViewText:
		if text == s.TextValue {
			return false
		}
		return f.dispatch(app.TextChanged{Text: text})
	case ViewUsername:
		if text == s.Username {
			return false
		}
		return f.dispatch(app.UsernameChanged{Text: text})
	}
	return false
}

func (f *Form) dispatch(ev app.Event) bool {
	if !f.ctrl.Dispatch(ev) {
		f.log.Warn("form emitted an event outside its variant", zap.String("event", ev.Name()))
		return false
	}
	return true
}
